package onboarding_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mmnete/bimasoft-backend/internal/onboarding"
	onboardingerrors "github.com/mmnete/bimasoft-backend/internal/onboarding/errors"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	organizationerrors "github.com/mmnete/bimasoft-backend/internal/organization/errors"
	orgMock "github.com/mmnete/bimasoft-backend/internal/organization/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApprover_Approve(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (onboarding.Approver, *orgMock.MockRepository, *orgMock.MockRepository) {
		ctrl := gomock.NewController(t)
		companies := orgMock.NewMockRepository(ctrl)
		all := orgMock.NewMockRepository(ctrl)
		approver := onboarding.NewApprover("s3cret", map[string]organization.Repository{
			organization.TypeCompany: companies,
			"":                       all,
		})
		return approver, companies, all
	}

	t.Run("success", func(t *testing.T) {
		approver, companies, _ := setup(t)
		companies.EXPECT().Approve(ctx, int64(5)).Return(&organization.Organization{
			ID: 5, LegalName: "Acme Insurance", AccountStatus: organization.StatusApproved,
		}, nil)

		resp, err := approver.Approve(ctx, organization.TypeCompany, 5, "s3cret")

		require.NoError(t, err)
		assert.Equal(t, organization.StatusApproved, resp.AccountStatus)
	})

	t.Run("approving twice still succeeds", func(t *testing.T) {
		approver, _, all := setup(t)
		all.EXPECT().Approve(ctx, int64(5)).Return(&organization.Organization{
			ID: 5, AccountStatus: organization.StatusApproved,
		}, nil).Times(2)

		_, err := approver.Approve(ctx, "", 5, "s3cret")
		require.NoError(t, err)
		_, err = approver.Approve(ctx, "", 5, "s3cret")
		require.NoError(t, err)
	})

	t.Run("wrong secret touches nothing", func(t *testing.T) {
		approver, _, _ := setup(t)

		_, err := approver.Approve(ctx, organization.TypeCompany, 5, "guess")

		assert.ErrorIs(t, err, onboardingerrors.ErrIncorrectDevPassword)
	})

	t.Run("empty secret", func(t *testing.T) {
		approver, _, _ := setup(t)

		_, err := approver.Approve(ctx, organization.TypeCompany, 5, "")

		assert.ErrorIs(t, err, onboardingerrors.ErrIncorrectDevPassword)
	})

	t.Run("missing row", func(t *testing.T) {
		approver, companies, _ := setup(t)
		companies.EXPECT().Approve(ctx, int64(99)).Return(nil, nil)

		_, err := approver.Approve(ctx, organization.TypeCompany, 99, "s3cret")

		assert.ErrorIs(t, err, organizationerrors.ErrCompanyNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		approver, companies, _ := setup(t)
		companies.EXPECT().Approve(ctx, int64(5)).Return(nil, errors.New("db down"))

		_, err := approver.Approve(ctx, organization.TypeCompany, 5, "s3cret")

		assert.EqualError(t, err, "db down")
	})
}
