package queries_test

import (
	"context"
	"testing"
	"time"

	"lockers/internal/adapters/out/postgres/assignmentrepo"
	"lockers/internal/adapters/out/postgres/lockerrepo"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/assignment"
	"lockers/internal/core/domain/model/locker"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAvailabilityViolationsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailabilityViolationsQueryHandler
}

func (suite *GetAvailabilityViolationsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&lockerrepo.LockerDTO{}, &assignmentrepo.AssignmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAvailabilityViolationsQueryHandler(db)
}

func (suite *GetAvailabilityViolationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAvailabilityViolationsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE lockers, assignments").Error
	suite.Require().NoError(err)
}

func (suite *GetAvailabilityViolationsQueryHandlerTestSuite) seedLocker(number int) *locker.Locker {
	entity, err := locker.NewLocker(number, "Edificio 2, primer piso")
	suite.Require().NoError(err)
	suite.Require().NoError(lockerrepo.NewGormLockerRepository(suite.db).Add(context.Background(), entity))
	return entity
}

func (suite *GetAvailabilityViolationsQueryHandlerTestSuite) seedAssignment(lockerID uint64) {
	grant, err := assignment.NewAssignment(1, lockerID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(assignmentrepo.NewGormAssignmentRepository(suite.db).Add(context.Background(), grant))
}

func (suite *GetAvailabilityViolationsQueryHandlerTestSuite) TestHandle_CleanState_NoViolations() {
	taken := suite.seedLocker(101)
	suite.seedAssignment(taken.ID())
	suite.Require().NoError(
		lockerrepo.NewGormLockerRepository(suite.db).MarkUnavailable(context.Background(), taken.ID()))
	suite.seedLocker(102)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailabilityViolationsQuery())

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetAvailabilityViolationsQueryHandlerTestSuite) TestHandle_AssignedButStillAvailable_Reported() {
	violating := suite.seedLocker(101)
	suite.seedAssignment(violating.ID())
	suite.seedAssignment(violating.ID())
	suite.seedLocker(102)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailabilityViolationsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(violating.ID(), result[0].LockerID)
	suite.Equal(101, result[0].LockerNumber)
	suite.Equal(int64(2), result[0].Assignments)
}

func TestGetAvailabilityViolationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailabilityViolationsQueryHandlerTestSuite))
}
