package restaurantrepo_test

import (
	"context"
	"testing"

	"dispatch/internal/adapters/out/postgres/restaurantrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *restaurantrepo.GormRestaurantRepository
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&restaurantrepo.RestaurantDTO{}))
	suite.repository = restaurantrepo.NewGormRestaurantRepository(db)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurants").Error)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestSave_InsertsThenReplaces() {
	ctx := context.Background()
	minimum := kernel.MoneyFromInt(300)
	terms := ports.RestaurantTerms{
		RestaurantID: kernel.NewUUID(),
		Name:         "Parrilla",
		MinimumOrder: &minimum,
		ClientScope:  "caba",
		Zone:         2,
	}
	suite.Require().NoError(suite.repository.Save(ctx, terms))

	loaded, err := suite.repository.Get(ctx, terms.RestaurantID)
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.MinimumOrder)
	suite.Equal("300.00", loaded.MinimumOrder.String())
	suite.Equal(2, loaded.Zone)

	terms.Name = "Parrilla Norte"
	terms.MinimumOrder = nil
	terms.Zone = 3
	suite.Require().NoError(suite.repository.Save(ctx, terms))

	loaded, err = suite.repository.Get(ctx, terms.RestaurantID)
	suite.Require().NoError(err)
	suite.Equal("Parrilla Norte", loaded.Name)
	suite.Nil(loaded.MinimumOrder)
	suite.Equal(3, loaded.Zone)

	var count int64
	suite.Require().NoError(suite.db.Model(&restaurantrepo.RestaurantDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
