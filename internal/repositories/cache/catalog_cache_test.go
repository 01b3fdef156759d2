//go:build integration

package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/SscSPs/sopas_backend/internal/repositories/cache"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) FindTipoSopaByCodigo(ctx context.Context, codigo string) (*domain.TipoSopa, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipoSopa), args.Error(1)
}

func (m *mockCatalogRepository) ListTiposSopa(ctx context.Context) ([]domain.TipoSopa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipoSopa), args.Error(1)
}

func (m *mockCatalogRepository) UpdatePrecio(ctx context.Context, codigo string, precio decimal.Decimal, updatedAt time.Time) (*domain.TipoSopa, error) {
	args := m.Called(ctx, codigo, precio, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipoSopa), args.Error(1)
}

type CatalogCacheTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	repo      *mockCatalogRepository
	cache     *cache.CatalogCache
}

func (s *CatalogCacheTestSuite) SetupSuite() {
	testcontainers.SkipIfProviderIsNotHealthy(s.T())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	s.Require().NoError(err)

	s.rdb = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	s.Require().NoError(s.rdb.Ping(ctx).Err())
}

func (s *CatalogCacheTestSuite) TearDownSuite() {
	if s.rdb != nil {
		_ = s.rdb.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *CatalogCacheTestSuite) SetupTest() {
	s.Require().NoError(s.rdb.FlushDB(context.Background()).Err())
	s.repo = new(mockCatalogRepository)
	s.cache = cache.NewCatalogCache(s.repo, s.rdb, time.Minute)
}

func (s *CatalogCacheTestSuite) TestReadThrough() {
	ctx := context.Background()
	tipo := &domain.TipoSopa{ID: "1", Codigo: domain.CodigoConEmpaque, Nombre: "Con empaque", Precio: decimal.NewFromInt(180)}
	s.repo.On("FindTipoSopaByCodigo", mock.Anything, domain.CodigoConEmpaque).Return(tipo, nil).Once()

	first, err := s.cache.FindTipoSopaByCodigo(ctx, domain.CodigoConEmpaque)
	s.Require().NoError(err)
	second, err := s.cache.FindTipoSopaByCodigo(ctx, domain.CodigoConEmpaque)
	s.Require().NoError(err)

	s.Equal("180", first.Precio.String())
	s.Equal("180", second.Precio.String())
	s.Equal(tipo.Nombre, second.Nombre)
	s.repo.AssertNumberOfCalls(s.T(), "FindTipoSopaByCodigo", 1)
}

func (s *CatalogCacheTestSuite) TestUpdateEvicts() {
	ctx := context.Background()
	now := time.Now().UTC()
	old := &domain.TipoSopa{Codigo: domain.CodigoSinEmpaque, Precio: decimal.NewFromInt(160)}
	updated := &domain.TipoSopa{Codigo: domain.CodigoSinEmpaque, Precio: decimal.NewFromInt(170)}
	s.repo.On("FindTipoSopaByCodigo", mock.Anything, domain.CodigoSinEmpaque).Return(old, nil).Once()
	s.repo.On("UpdatePrecio", mock.Anything, domain.CodigoSinEmpaque, updated.Precio, now).Return(updated, nil).Once()
	s.repo.On("FindTipoSopaByCodigo", mock.Anything, domain.CodigoSinEmpaque).Return(updated, nil).Once()

	_, err := s.cache.FindTipoSopaByCodigo(ctx, domain.CodigoSinEmpaque)
	s.Require().NoError(err)
	_, err = s.cache.UpdatePrecio(ctx, domain.CodigoSinEmpaque, updated.Precio, now)
	s.Require().NoError(err)

	got, err := s.cache.FindTipoSopaByCodigo(ctx, domain.CodigoSinEmpaque)
	s.Require().NoError(err)
	s.Equal("170", got.Precio.String())
	s.repo.AssertExpectations(s.T())
}

func (s *CatalogCacheTestSuite) TestMissIsNotCached() {
	ctx := context.Background()
	s.repo.On("FindTipoSopaByCodigo", mock.Anything, "XL").Return(nil, domain.ErrTipoSopaNoExiste).Twice()

	for i := 0; i < 2; i++ {
		_, err := s.cache.FindTipoSopaByCodigo(ctx, "XL")
		s.ErrorIs(err, domain.ErrTipoSopaNoExiste)
	}
	s.repo.AssertExpectations(s.T())
}

func (s *CatalogCacheTestSuite) TestPing() {
	require.NoError(s.T(), s.cache.Ping(context.Background()))
}

func TestCatalogCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	suite.Run(t, new(CatalogCacheTestSuite))
}
