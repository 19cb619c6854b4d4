package customer_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mmnete/bimasoft-backend/internal/customer"
	customererrors "github.com/mmnete/bimasoft-backend/internal/customer/errors"
	customerMock "github.com/mmnete/bimasoft-backend/internal/customer/mock"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	orgMock "github.com/mmnete/bimasoft-backend/internal/organization/mock"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     customer.Service
	customers   *customerMock.MockRepository
	individuals *customerMock.MockIndividualRepository
	corporates  *customerMock.MockCorporateRepository
	links       *customerMock.MockLinkRepository
	orgs        *orgMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		db:          db,
		sqlMock:     sqlMock,
		customers:   customerMock.NewMockRepository(ctrl),
		individuals: customerMock.NewMockIndividualRepository(ctrl),
		corporates:  customerMock.NewMockCorporateRepository(ctrl),
		links:       customerMock.NewMockLinkRepository(ctrl),
		orgs:        orgMock.NewMockRepository(ctrl),
	}
	deps.service = customer.NewService(db, customer.Repositories{
		Customers:   deps.customers,
		Individuals: deps.individuals,
		Corporates:  deps.corporates,
		Links:       deps.links,
	}, deps.orgs)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string { return &s }

func individualRequest() customer.CreateCustomerRequest {
	return customer.CreateCustomerRequest{
		CustomerType: customer.TypeIndividual,
		LegalName:    "Juma Hassan",
		TinNumber:    "TIN-9",
		NationalID:   strPtr("19900101-12345-00001-21"),
		ContactPhone: strPtr("+255711000111"),
	}
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("individual with details in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindDuplicate(ctx, "Juma Hassan", "TIN-9", "19900101-12345-00001-21", int64(0)).Return(nil, nil)
		expectTx(t, deps.sqlMock, true)
		deps.customers.EXPECT().WithTx(gomock.Any()).Return(deps.customers)
		deps.customers.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *customer.Customer) error {
			c.ID = 11
			return nil
		})
		deps.individuals.EXPECT().WithTx(gomock.Any()).Return(deps.individuals)
		deps.individuals.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ic *customer.IndividualCustomer) error {
			assert.Equal(t, int64(11), ic.CustomerID)
			ic.ID = 3
			return nil
		})

		resp, err := deps.service.Create(ctx, individualRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		require.NotNil(t, resp.Individual)
		assert.Equal(t, "19900101-12345-00001-21", *resp.Individual.NationalID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("individual without national id", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := individualRequest()
		req.NationalID = nil

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, customererrors.ErrNationalIDRequired)
	})

	t.Run("duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).
			Return(&customer.Customer{ID: 2}, nil)

		_, err := deps.service.Create(ctx, individualRequest())

		assert.ErrorIs(t, err, customererrors.ErrCustomerAlreadyExists)
		assert.Equal(t, apperror.CodeDuplicate, apperror.ToHTTP(err).Code)
	})

	t.Run("corporate brela taken", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindDuplicate(ctx, "Kilimo Ltd", "TIN-7", "", int64(0)).Return(nil, nil)
		deps.corporates.EXPECT().FindByBrela(ctx, "BR-77", int64(0)).Return(&customer.CorporateCustomer{ID: 1}, nil)

		_, err := deps.service.Create(ctx, customer.CreateCustomerRequest{
			CustomerType:            customer.TypeCorporate,
			LegalName:               "Kilimo Ltd",
			TinNumber:               "TIN-7",
			BrelaRegistrationNumber: strPtr("BR-77"),
		})

		assert.ErrorIs(t, err, customererrors.ErrCorporateAlreadyExists)
	})

	t.Run("detail insert failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).Return(nil, nil)
		expectTx(t, deps.sqlMock, false)
		deps.customers.EXPECT().WithTx(gomock.Any()).Return(deps.customers)
		deps.customers.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.individuals.EXPECT().WithTx(gomock.Any()).Return(deps.individuals)
		deps.individuals.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.Create(ctx, individualRequest())

		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCustomerService_CreateForOrganization(t *testing.T) {
	ctx := context.Background()

	t.Run("links inside the transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.orgs.EXPECT().FindOne(ctx, int64(42)).Return(&organization.Organization{ID: 42}, nil)
		deps.customers.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).Return(nil, nil)
		expectTx(t, deps.sqlMock, true)
		deps.customers.EXPECT().WithTx(gomock.Any()).Return(deps.customers)
		deps.customers.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *customer.Customer) error {
			c.ID = 11
			return nil
		})
		deps.individuals.EXPECT().WithTx(gomock.Any()).Return(deps.individuals)
		deps.individuals.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.links.EXPECT().WithTx(gomock.Any()).Return(deps.links)
		deps.links.EXPECT().Link(ctx, int64(11), int64(42)).Return(nil)

		resp, err := deps.service.CreateForOrganization(ctx, 42, individualRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.orgs.EXPECT().FindOne(ctx, int64(404)).Return(nil, nil)

		_, err := deps.service.CreateForOrganization(ctx, 404, individualRequest())

		assert.ErrorIs(t, err, customererrors.ErrOrganizationNotFound)
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate legal name excluding self", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindDuplicate(ctx, "Other Name", "", "", int64(5)).Return(&customer.Customer{ID: 6}, nil)

		_, err := deps.service.Update(ctx, 5, map[string]any{"legalName": "Other Name"})

		assert.ErrorIs(t, err, customererrors.ErrCustomerAlreadyExists)
	})

	t.Run("invalid type", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, 5, map[string]any{"customerType": "alien"})

		assert.ErrorIs(t, err, customererrors.ErrInvalidCustomerType)
	})

	t.Run("missing row", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().Update(ctx, int64(5), map[string]any{"contactPhone": "+255700"}).Return(nil, nil)

		_, err := deps.service.Update(ctx, 5, map[string]any{"contactPhone": "+255700"})

		assert.ErrorIs(t, err, customererrors.ErrCustomerNotFound)
	})
}

func TestCustomerService_GetByID_IncludesDetails(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	deps.customers.EXPECT().FindOne(ctx, int64(8)).Return(&customer.Customer{ID: 8, CustomerType: customer.TypeCorporate, LegalName: "Kilimo Ltd"}, nil)
	deps.corporates.EXPECT().FindByCustomerID(ctx, int64(8)).Return(&customer.CorporateCustomer{ID: 2, CustomerID: 8, BrelaRegistrationNumber: strPtr("BR-77")}, nil)

	resp, err := deps.service.GetByID(ctx, 8)

	require.NoError(t, err)
	require.NotNil(t, resp.Corporate)
	assert.Nil(t, resp.Individual)
	assert.Equal(t, "BR-77", *resp.Corporate.BrelaRegistrationNumber)
}

func TestCustomerService_Links(t *testing.T) {
	ctx := context.Background()

	t.Run("unlink missing pair", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.links.EXPECT().Unlink(ctx, int64(3), int64(42)).Return(false, nil)

		err := deps.service.Unlink(ctx, 42, 3)

		assert.ErrorIs(t, err, customererrors.ErrLinkNotFound)
	})

	t.Run("link requires both sides", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindOne(ctx, int64(3)).Return(&customer.Customer{ID: 3}, nil)
		deps.orgs.EXPECT().FindOne(ctx, int64(42)).Return(nil, nil)

		err := deps.service.Link(ctx, 42, 3)

		assert.ErrorIs(t, err, customererrors.ErrOrganizationNotFound)
	})

	t.Run("organizations of a customer", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.links.EXPECT().FindOrganizations(ctx, int64(3)).Return([]int64{1, 42}, nil)

		resp, err := deps.service.GetOrganizations(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 42}, resp.OrganizationIDs)
	})
}

func TestSearch_RequiresQuery(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Search(context.Background(), "  ")

	assert.ErrorIs(t, err, apperror.ErrSearchQueryRequired)
}
