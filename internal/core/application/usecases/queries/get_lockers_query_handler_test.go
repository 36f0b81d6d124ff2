package queries_test

import (
	"context"
	"testing"
	"time"

	"lockers/internal/adapters/out/postgres/lockerrepo"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLockersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLockersQueryHandler
}

func (suite *GetLockersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&lockerrepo.LockerDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetLockersQueryHandler(db)
}

func (suite *GetLockersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLockersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE lockers").Error
	suite.Require().NoError(err)
}

func (suite *GetLockersQueryHandlerTestSuite) student() kernel.Principal {
	principal, err := kernel.NewPrincipal(7, kernel.Student)
	suite.Require().NoError(err)
	return principal
}

func (suite *GetLockersQueryHandlerTestSuite) seedLocker(number int, available bool) *locker.Locker {
	entity, err := locker.NewLocker(number, "Edificio 2, primer piso")
	suite.Require().NoError(err)

	repo := lockerrepo.NewGormLockerRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), entity))

	if !available {
		suite.Require().NoError(repo.MarkUnavailable(context.Background(), entity.ID()))
	}
	return entity
}

func (suite *GetLockersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetLockersQuery(suite.student(), false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetLockersQueryHandlerTestSuite) TestHandle_ReturnsAllLockers() {
	suite.seedLocker(101, true)
	suite.seedLocker(102, false)
	suite.seedLocker(103, true)

	query, err := queries.NewGetLockersQuery(suite.student(), false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(101, result[0].Number)
	suite.True(result[0].Available)
	suite.Equal(102, result[1].Number)
	suite.False(result[1].Available)
	suite.Equal(103, result[2].Number)
}

func (suite *GetLockersQueryHandlerTestSuite) TestHandle_OnlyAvailable_FiltersTakenLockers() {
	suite.seedLocker(101, true)
	suite.seedLocker(102, false)
	suite.seedLocker(103, true)

	query, err := queries.NewGetLockersQuery(suite.student(), true)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(101, result[0].Number)
	suite.Equal(103, result[1].Number)
}

func (suite *GetLockersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetLockersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetLockersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.seedLocker(101, true)

	query, err := queries.NewGetLockersQuery(suite.student(), false)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
}

func TestGetLockersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLockersQueryHandlerTestSuite))
}
