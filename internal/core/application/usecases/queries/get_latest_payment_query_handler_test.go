package queries_test

import (
	"context"
	"testing"
	"time"

	"lockers/internal/adapters/out/postgres/paymentrepo"
	"lockers/internal/adapters/out/postgres/requestrepo"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/core/domain/model/request"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLatestPaymentQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLatestPaymentQueryHandler
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&requestrepo.RequestDTO{}, &paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetLatestPaymentQueryHandler(db)
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE requests, payments").Error
	suite.Require().NoError(err)
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) principal(userID uint64, role kernel.Role) kernel.Principal {
	principal, err := kernel.NewPrincipal(userID, role)
	suite.Require().NoError(err)
	return principal
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) seedRequest(userID uint64) *request.Request {
	entity, err := request.NewRequest(userID, "2021630123", "Ana Torres", "5", "ana@alumno.ipn.mx", "5512345678")
	suite.Require().NoError(err)
	suite.Require().NoError(requestrepo.NewGormRequestRepository(suite.db).Add(context.Background(), entity))
	return entity
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) seedPayment(requestID uint64, proofURL string) *payment.Payment {
	entity, err := payment.NewPayment(requestID, proofURL)
	suite.Require().NoError(err)
	suite.Require().NoError(paymentrepo.NewGormPaymentRepository(suite.db).Add(context.Background(), entity))
	return entity
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) TestHandle_Owner_LatestPaymentWins() {
	requestEntity := suite.seedRequest(7)
	suite.seedPayment(requestEntity.ID(), "https://storage.local/payments/first.pdf")
	latest := suite.seedPayment(requestEntity.ID(), "https://storage.local/payments/second.pdf")

	query, err := queries.NewGetLatestPaymentQuery(suite.principal(7, kernel.Student), requestEntity.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(latest.ID(), result.ID)
	suite.Equal("https://storage.local/payments/second.pdf", result.ProofURL)
	suite.False(result.Validated)
	suite.Equal("no pagado", result.PayStatus)
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) TestHandle_Coordinator_CanReadAnyRequest() {
	requestEntity := suite.seedRequest(7)
	suite.seedPayment(requestEntity.ID(), "https://storage.local/payments/p.pdf")

	query, err := queries.NewGetLatestPaymentQuery(suite.principal(99, kernel.Coordinator), requestEntity.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(requestEntity.ID(), result.RequestID)
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) TestHandle_AnotherStudent_Forbidden() {
	requestEntity := suite.seedRequest(7)
	suite.seedPayment(requestEntity.ID(), "https://storage.local/payments/p.pdf")

	query, err := queries.NewGetLatestPaymentQuery(suite.principal(8, kernel.Student), requestEntity.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) TestHandle_UnknownRequest_NotFound() {
	query, err := queries.NewGetLatestPaymentQuery(suite.principal(7, kernel.Student), 12345)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) TestHandle_NoPayments_NotFound() {
	requestEntity := suite.seedRequest(7)

	query, err := queries.NewGetLatestPaymentQuery(suite.principal(7, kernel.Student), requestEntity.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetLatestPaymentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetLatestPaymentQuery{})
	suite.Require().Error(err)
}

func TestGetLatestPaymentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLatestPaymentQueryHandlerTestSuite))
}
