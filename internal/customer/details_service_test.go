package customer_test

import (
	"context"
	"testing"

	"github.com/mmnete/bimasoft-backend/internal/customer"
	customererrors "github.com/mmnete/bimasoft-backend/internal/customer/errors"
	customerMock "github.com/mmnete/bimasoft-backend/internal/customer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIndividualService(t *testing.T) {
	ctx := context.Background()
	setup := func(t *testing.T) (customer.IndividualService, *customerMock.MockRepository, *customerMock.MockIndividualRepository) {
		ctrl := gomock.NewController(t)
		customers := customerMock.NewMockRepository(ctrl)
		repo := customerMock.NewMockIndividualRepository(ctrl)
		return customer.NewIndividualService(customers, repo), customers, repo
	}

	t.Run("create", func(t *testing.T) {
		svc, customers, repo := setup(t)
		customers.EXPECT().FindOne(ctx, int64(11)).Return(&customer.Customer{ID: 11}, nil)
		repo.EXPECT().FindByNationalID(ctx, "NID-1", int64(0)).Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ic *customer.IndividualCustomer) error {
			ic.ID = 4
			return nil
		})

		resp, err := svc.Create(ctx, customer.CreateIndividualRequest{CustomerID: 11, NationalID: "NID-1"})

		require.NoError(t, err)
		assert.Equal(t, int64(4), resp.ID)
	})

	t.Run("duplicate national id", func(t *testing.T) {
		svc, customers, repo := setup(t)
		customers.EXPECT().FindOne(ctx, int64(11)).Return(&customer.Customer{ID: 11}, nil)
		repo.EXPECT().FindByNationalID(ctx, "NID-1", int64(0)).Return(&customer.IndividualCustomer{ID: 9}, nil)

		_, err := svc.Create(ctx, customer.CreateIndividualRequest{CustomerID: 11, NationalID: "NID-1"})

		assert.ErrorIs(t, err, customererrors.ErrIndividualAlreadyExists)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc, customers, _ := setup(t)
		customers.EXPECT().FindOne(ctx, int64(11)).Return(nil, nil)

		_, err := svc.Create(ctx, customer.CreateIndividualRequest{CustomerID: 11, NationalID: "NID-1"})

		assert.ErrorIs(t, err, customererrors.ErrCustomerNotFound)
	})

	t.Run("update re-checks national id excluding self", func(t *testing.T) {
		svc, _, repo := setup(t)
		repo.EXPECT().FindByNationalID(ctx, "NID-2", int64(4)).Return(&customer.IndividualCustomer{ID: 5}, nil)

		_, err := svc.Update(ctx, 4, map[string]any{"nationalId": "NID-2"})

		assert.ErrorIs(t, err, customererrors.ErrIndividualAlreadyExists)
	})

	t.Run("lookup by national id", func(t *testing.T) {
		svc, _, repo := setup(t)
		repo.EXPECT().FindByNationalID(ctx, "NID-3", int64(0)).Return(nil, nil)

		_, err := svc.GetByNationalID(ctx, "NID-3")

		assert.ErrorIs(t, err, customererrors.ErrIndividualNotFound)
	})
}

func TestCorporateService(t *testing.T) {
	ctx := context.Background()
	setup := func(t *testing.T) (customer.CorporateService, *customerMock.MockRepository, *customerMock.MockCorporateRepository) {
		ctrl := gomock.NewController(t)
		customers := customerMock.NewMockRepository(ctrl)
		repo := customerMock.NewMockCorporateRepository(ctrl)
		return customer.NewCorporateService(customers, repo), customers, repo
	}

	t.Run("create", func(t *testing.T) {
		svc, customers, repo := setup(t)
		customers.EXPECT().FindOne(ctx, int64(8)).Return(&customer.Customer{ID: 8}, nil)
		repo.EXPECT().FindByBrela(ctx, "BR-77", int64(0)).Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := svc.Create(ctx, customer.CreateCorporateRequest{CustomerID: 8, BrelaRegistrationNumber: "BR-77"})

		require.NoError(t, err)
		assert.Equal(t, "BR-77", *resp.BrelaRegistrationNumber)
	})

	t.Run("duplicate brela", func(t *testing.T) {
		svc, customers, repo := setup(t)
		customers.EXPECT().FindOne(ctx, int64(8)).Return(&customer.Customer{ID: 8}, nil)
		repo.EXPECT().FindByBrela(ctx, "BR-77", int64(0)).Return(&customer.CorporateCustomer{ID: 1}, nil)

		_, err := svc.Create(ctx, customer.CreateCorporateRequest{CustomerID: 8, BrelaRegistrationNumber: "BR-77"})

		assert.ErrorIs(t, err, customererrors.ErrCorporateAlreadyExists)
	})

	t.Run("missing", func(t *testing.T) {
		svc, _, repo := setup(t)
		repo.EXPECT().FindOne(ctx, int64(1)).Return(nil, nil)

		_, err := svc.GetByID(ctx, 1)

		assert.ErrorIs(t, err, customererrors.ErrCorporateNotFound)
	})
}
