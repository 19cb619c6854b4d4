package policy_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mmnete/bimasoft-backend/internal/customer"
	customerMock "github.com/mmnete/bimasoft-backend/internal/customer/mock"
	"github.com/mmnete/bimasoft-backend/internal/policy"
	policyerrors "github.com/mmnete/bimasoft-backend/internal/policy/errors"
	policyMock "github.com/mmnete/bimasoft-backend/internal/policy/mock"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	counterMock "github.com/mmnete/bimasoft-backend/internal/shared/counter/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   policy.Service
	motorSvc  policy.MotorService
	policies  *policyMock.MockRepository
	motor     *policyMock.MockMotorRepository
	counters  *counterMock.MockRepository
	customers *customerMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		policies:  policyMock.NewMockRepository(ctrl),
		motor:     policyMock.NewMockMotorRepository(ctrl),
		counters:  counterMock.NewMockRepository(ctrl),
		customers: customerMock.NewMockRepository(ctrl),
	}
	deps.service = policy.NewService(db, deps.policies, deps.motor, deps.counters, deps.customers)
	deps.motorSvc = policy.NewMotorService(deps.policies, deps.motor)
	return deps
}

func createRequest() policy.CreatePolicyRequest {
	return policy.CreatePolicyRequest{
		CustomerID:        7,
		InsuranceEntityID: 42,
		EntityType:        "company",
		PolicyType:        "motor",
		StartDate:         "2026-01-01",
		EndDate:           "2026-12-31",
		PremiumAmount:     350000,
	}
}

func date(s string) datatypes.Date {
	t, _ := time.Parse(policy.DateLayout, s)
	return datatypes.Date(t)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "POL-C42-000007", policy.FormatNumber("company", 42, 7))
	assert.Equal(t, "POL-B3-000120", policy.FormatNumber("broker", 3, 120))
}

func TestPolicyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a number inside the transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindOne(ctx, int64(7)).Return(&customer.Customer{ID: 7}, nil)
		deps.sqlMock.ExpectBegin()
		deps.counters.EXPECT().WithTx(gomock.Any()).Return(deps.counters)
		deps.counters.EXPECT().NextValue(ctx, int64(42), "policy:company").Return(int64(7), nil)
		deps.policies.EXPECT().WithTx(gomock.Any()).Return(deps.policies)
		deps.policies.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *policy.Policy) error {
			assert.Equal(t, "POL-C42-000007", p.PolicyNumber)
			assert.Equal(t, policy.StatusActive, p.Status)
			assert.Equal(t, date("2026-12-31"), p.EndDate)
			p.ID = 100
			return nil
		})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, createRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, "POL-C42-000007", resp.PolicyNumber)
		assert.Equal(t, "2026-01-01", resp.StartDate)
		assert.Nil(t, resp.Motor)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("explicit number with motor details", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := createRequest()
		req.PolicyNumber = "MTR-001"
		req.Motor = &policy.MotorDetailsRequest{VehicleRegistrationNumber: "t123abc", Make: "Toyota", Model: "Hilux"}

		deps.customers.EXPECT().FindOne(ctx, int64(7)).Return(&customer.Customer{ID: 7}, nil)
		deps.policies.EXPECT().FindByPolicyNumber(ctx, "MTR-001", int64(0)).Return(nil, nil)
		deps.sqlMock.ExpectBegin()
		deps.policies.EXPECT().WithTx(gomock.Any()).Return(deps.policies)
		deps.policies.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *policy.Policy) error {
			p.ID = 5
			return nil
		})
		deps.motor.EXPECT().WithTx(gomock.Any()).Return(deps.motor)
		deps.motor.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *policy.MotorPolicy) error {
			assert.Equal(t, int64(5), m.PolicyID)
			assert.Equal(t, "T123ABC", m.VehicleRegistrationNumber)
			m.ID = 9
			return nil
		})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "MTR-001", resp.PolicyNumber)
		require.NotNil(t, resp.Motor)
		assert.Equal(t, int64(9), resp.Motor.ID)
	})

	t.Run("end date before start date", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := createRequest()
		req.EndDate = "2025-12-31"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, policyerrors.ErrEndBeforeStart)
	})

	t.Run("malformed date", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := createRequest()
		req.StartDate = "01/01/2026"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, policyerrors.ErrInvalidDate)
	})

	t.Run("unknown customer", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindOne(ctx, int64(7)).Return(nil, nil)

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, policyerrors.ErrCustomerNotFound)
	})

	t.Run("duplicate explicit number", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := createRequest()
		req.PolicyNumber = "MTR-001"
		deps.customers.EXPECT().FindOne(ctx, int64(7)).Return(&customer.Customer{ID: 7}, nil)
		deps.policies.EXPECT().FindByPolicyNumber(ctx, "MTR-001", int64(0)).Return(&policy.Policy{ID: 1}, nil)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, policyerrors.ErrPolicyAlreadyExists)
	})

	t.Run("counter failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.customers.EXPECT().FindOne(ctx, int64(7)).Return(&customer.Customer{ID: 7}, nil)
		deps.sqlMock.ExpectBegin()
		deps.counters.EXPECT().WithTx(gomock.Any()).Return(deps.counters)
		deps.counters.EXPECT().NextValue(ctx, int64(42), "policy:company").Return(int64(0), errors.New("boom"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, createRequest())

		assert.EqualError(t, err, "boom")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPolicyService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches motor details", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindOne(ctx, int64(5)).Return(&policy.Policy{ID: 5, StartDate: date("2026-01-01")}, nil)
		deps.motor.EXPECT().FindByPolicyID(ctx, int64(5)).Return(&policy.MotorPolicy{ID: 9, PolicyID: 5, Make: "Toyota"}, nil)

		resp, err := deps.service.GetByID(ctx, 5)

		require.NoError(t, err)
		require.NotNil(t, resp.Motor)
		assert.Equal(t, "Toyota", resp.Motor.Make)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindOne(ctx, int64(5)).Return(nil, nil)

		_, err := deps.service.GetByID(ctx, 5)

		assert.ErrorIs(t, err, policyerrors.ErrPolicyNotFound)
	})
}

func TestPolicyService_Search(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Search(context.Background(), "  ")

	assert.ErrorIs(t, err, apperror.ErrSearchQueryRequired)
}

func TestPolicyService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("parses dates and rechecks the number", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindOne(ctx, int64(5)).Return(&policy.Policy{ID: 5, StartDate: date("2026-02-01"), EndDate: date("2027-01-31")}, nil)
		deps.policies.EXPECT().FindByPolicyNumber(ctx, "MTR-002", int64(5)).Return(nil, nil)
		deps.policies.EXPECT().Update(ctx, int64(5), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, fields map[string]any) (*policy.Policy, error) {
				assert.Equal(t, date("2027-01-31"), fields["endDate"])
				return &policy.Policy{ID: 5, PolicyNumber: "MTR-002"}, nil
			})

		resp, err := deps.service.Update(ctx, 5, map[string]any{"policyNumber": "MTR-002", "endDate": "2027-01-31"})

		require.NoError(t, err)
		assert.Equal(t, "MTR-002", resp.PolicyNumber)
	})

	t.Run("end date before stored start date", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindOne(ctx, int64(5)).Return(&policy.Policy{ID: 5, StartDate: date("2026-02-01"), EndDate: date("2027-01-31")}, nil)

		_, err := deps.service.Update(ctx, 5, map[string]any{"endDate": "2026-01-15"})

		assert.ErrorIs(t, err, policyerrors.ErrEndBeforeStart)
	})

	t.Run("both dates in the patch skip the lookup", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, 5, map[string]any{"startDate": "2026-03-01", "endDate": "2026-02-01"})

		assert.ErrorIs(t, err, policyerrors.ErrEndBeforeStart)
	})

	t.Run("date change on a missing policy", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindOne(ctx, int64(5)).Return(nil, nil)

		_, err := deps.service.Update(ctx, 5, map[string]any{"startDate": "2026-03-01"})

		assert.ErrorIs(t, err, policyerrors.ErrPolicyNotFound)
	})

	t.Run("number taken by another policy", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindByPolicyNumber(ctx, "MTR-002", int64(5)).Return(&policy.Policy{ID: 6}, nil)

		_, err := deps.service.Update(ctx, 5, map[string]any{"policyNumber": "MTR-002"})

		assert.ErrorIs(t, err, policyerrors.ErrPolicyAlreadyExists)
	})

	t.Run("empty patch", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, 5, map[string]any{})

		assert.ErrorIs(t, err, policyerrors.ErrNoFieldsToUpdate)
	})

	t.Run("missing row", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().Update(ctx, int64(5), gomock.Any()).Return(nil, nil)

		_, err := deps.service.Update(ctx, 5, map[string]any{"status": "lapsed"})

		assert.ErrorIs(t, err, policyerrors.ErrPolicyNotFound)
	})
}

func TestMotorService_Create(t *testing.T) {
	ctx := context.Background()
	req := policy.CreateMotorPolicyRequest{
		PolicyID:            5,
		MotorDetailsRequest: policy.MotorDetailsRequest{VehicleRegistrationNumber: "T123ABC", Make: "Toyota", Model: "Hilux"},
	}

	t.Run("created", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindOne(ctx, int64(5)).Return(&policy.Policy{ID: 5}, nil)
		deps.motor.EXPECT().FindByPolicyID(ctx, int64(5)).Return(nil, nil)
		deps.motor.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *policy.MotorPolicy) error {
			m.ID = 9
			return nil
		})

		resp, err := deps.motorSvc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
	})

	t.Run("policy missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindOne(ctx, int64(5)).Return(nil, nil)

		_, err := deps.motorSvc.Create(ctx, req)

		assert.ErrorIs(t, err, policyerrors.ErrPolicyNotFound)
	})

	t.Run("motor row already exists", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.policies.EXPECT().FindOne(ctx, int64(5)).Return(&policy.Policy{ID: 5}, nil)
		deps.motor.EXPECT().FindByPolicyID(ctx, int64(5)).Return(&policy.MotorPolicy{ID: 1}, nil)

		_, err := deps.motorSvc.Create(ctx, req)

		assert.ErrorIs(t, err, policyerrors.ErrMotorPolicyAlreadyExists)
	})
}

func TestMotorService_GetByPolicyID_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	deps.motor.EXPECT().FindByPolicyID(gomock.Any(), int64(5)).Return(nil, nil)

	_, err := deps.motorSvc.GetByPolicyID(context.Background(), 5)

	assert.ErrorIs(t, err, policyerrors.ErrMotorPolicyNotFound)
}
