package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"lockers/internal/adapters/out/postgres/paymentrepo"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PaymentRepositoryIntegrationTestSuite verifies payment persistence,
// in particular that the highest identifier is the current attempt.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_StartsUnvalidated() {
	ctx := context.Background()

	entity, err := payment.NewPayment(42, "http://storage.local/payments/a.jpg")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, entity))
	suite.NotZero(entity.ID())

	stored, err := suite.repository.Get(ctx, entity.ID())
	suite.Require().NoError(err)
	suite.False(stored.Validated())
	suite.Equal(payment.Unpaid, stored.PayStatus())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetLatestForRequest_HighestIDWins() {
	ctx := context.Background()

	first, err := payment.NewPayment(42, "http://storage.local/payments/a.jpg")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := payment.NewPayment(42, "http://storage.local/payments/b.jpg")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	latest, err := suite.repository.GetLatestForRequest(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal(second.ID(), latest.ID())
	suite.Equal("http://storage.local/payments/b.jpg", latest.ProofURL())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetLatestForRequest_None_NotFound() {
	_, err := suite.repository.GetLatestForRequest(context.Background(), 42)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_PersistsReview() {
	ctx := context.Background()

	entity, err := payment.NewPayment(42, "http://storage.local/payments/a.jpg")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, entity))

	suite.Require().NoError(entity.Decide(true, payment.Paid, ""))
	suite.Require().NoError(suite.repository.Update(ctx, entity))

	stored, err := suite.repository.Get(ctx, entity.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsApprovedForAssignment())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestCountForRequest() {
	ctx := context.Background()

	count, err := suite.repository.CountForRequest(ctx, 42)
	suite.Require().NoError(err)
	suite.Zero(count)

	entity, err := payment.NewPayment(42, "http://storage.local/payments/a.jpg")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, entity))

	count, err = suite.repository.CountForRequest(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
