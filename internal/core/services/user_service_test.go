package services_test

import (
	"context"
	"testing"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/core/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/alfadli/hrm_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "sara@alfadli.com" &&
			u.Role == domain.RoleStaff &&
			u.BranchID != nil && *u.BranchID == "B1" &&
			u.PasswordHash != "" && u.PasswordHash != "secret1" &&
			u.CreatedBy == adminID.ID
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, adminID, dto.CreateUserRequest{
		Email:    "  Sara@Alfadli.com ",
		Password: "secret1",
		Name:     "Sara",
		Role:     domain.RoleStaff,
		BranchID: strPtr("B1"),
	})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_StaffWithoutBranch() {
	_, err := suite.service.CreateUser(context.Background(), adminID, dto.CreateUserRequest{
		Email: "x@y.com", Password: "secret1", Name: "X", Role: domain.RoleStaff,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("branchId is required for STAFF users", apperrors.Message(err, ""))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	ctx := context.Background()
	suite.mockRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.NewConflictError("email already registered")).Once()

	_, err := suite.service.CreateUser(ctx, adminID, dto.CreateUserRequest{
		Email: "a@b.com", Password: "secret1", Name: "A", Role: domain.RoleManager,
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateUser_NonAdminDenied() {
	_, err := suite.service.CreateUser(context.Background(), managerID, dto.CreateUserRequest{
		Email: "a@b.com", Password: "secret1", Name: "A",
	})

	suite.Equal("Only admins can create users", apperrors.Message(err, ""))
}

func (suite *UserServiceTestSuite) TestListUsers() {
	ctx := context.Background()
	suite.mockRepo.On("FindUsers", ctx).Return([]domain.User{{UserID: "u1"}}, nil).Once()

	users, err := suite.service.ListUsers(ctx, adminID)
	suite.Require().NoError(err)
	suite.Len(users, 1)

	_, err = suite.service.ListUsers(ctx, managerID)
	suite.Equal("Only admins can view user list", apperrors.Message(err, ""))
}

func (suite *UserServiceTestSuite) TestUpdateUser_ClearingStaffBranchRejected() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "u1").
		Return(&domain.User{UserID: "u1", Role: domain.RoleStaff, BranchID: strPtr("B1")}, nil).Once()

	_, err := suite.service.UpdateUser(ctx, adminID, "u1", dto.UpdateUserRequest{BranchID: strPtr("")})

	suite.Equal("branchId is required for STAFF users", apperrors.Message(err, ""))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_PromoteToManager() {
	ctx := context.Background()
	manager := domain.RoleManager
	suite.mockRepo.On("FindUserByID", ctx, "u1").
		Return(&domain.User{UserID: "u1", Role: domain.RoleStaff, BranchID: strPtr("B1")}, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleManager && u.LastUpdatedBy == adminID.ID
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, adminID, "u1", dto.UpdateUserRequest{Role: &manager})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, user.Role)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Self() {
	err := suite.service.DeleteUser(context.Background(), adminID, adminID.ID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal("You cannot delete your own account", apperrors.Message(err, ""))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SoftDeletes() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "u2").Return(&domain.User{UserID: "u2"}, nil).Once()
	suite.mockRepo.On("MarkUserDeleted", ctx, "u2", mock.AnythingOfType("time.Time"), adminID.ID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, adminID, "u2")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, adminID, "ghost")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("User not found", apperrors.Message(err, ""))
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("secret1")
	suite.Require().NoError(err)
	ctx := context.Background()

	suite.Run("valid credentials", func() {
		suite.mockRepo.On("FindUserByEmail", ctx, "admin@alfadli.com").
			Return(&domain.User{UserID: "u1", Role: domain.RoleAdmin, PasswordHash: hash}, nil).Once()

		user, err := suite.service.AuthenticateUser(ctx, "Admin@alfadli.com", "secret1")
		suite.Require().NoError(err)
		suite.Equal("u1", user.UserID)
	})

	suite.Run("wrong password", func() {
		suite.mockRepo.On("FindUserByEmail", ctx, "admin@alfadli.com").
			Return(&domain.User{UserID: "u1", Role: domain.RoleAdmin, PasswordHash: hash}, nil).Once()

		_, err := suite.service.AuthenticateUser(ctx, "admin@alfadli.com", "nope")
		suite.ErrorIs(err, apperrors.ErrUnauthorized)
		suite.Equal("Invalid credentials", apperrors.Message(err, ""))
	})

	suite.Run("unknown email", func() {
		suite.mockRepo.On("FindUserByEmail", ctx, "who@alfadli.com").Return(nil, apperrors.ErrNotFound).Once()

		_, err := suite.service.AuthenticateUser(ctx, "who@alfadli.com", "secret1")
		suite.Equal("Invalid credentials", apperrors.Message(err, ""))
	})

	suite.Run("staff without branch", func() {
		suite.mockRepo.On("FindUserByEmail", ctx, "staff@alfadli.com").
			Return(&domain.User{UserID: "u3", Role: domain.RoleStaff, PasswordHash: hash}, nil).Once()

		_, err := suite.service.AuthenticateUser(ctx, "staff@alfadli.com", "secret1")
		suite.ErrorIs(err, apperrors.ErrForbidden)
		suite.Equal("Staff account has no branch assigned", apperrors.Message(err, ""))
	})
}

func (suite *UserServiceTestSuite) TestEnsureAdmin() {
	ctx := context.Background()

	suite.Run("seeds when missing", func() {
		suite.mockRepo.On("FindUserByEmail", ctx, "root@alfadli.com").Return(nil, apperrors.ErrNotFound).Once()
		suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Role == domain.RoleAdmin && u.CreatedBy == "SYSTEM" && u.BranchID == nil
		})).Return(nil).Once()

		suite.NoError(suite.service.EnsureAdmin(ctx, "root@alfadli.com", "secret1", "Root"))
	})

	suite.Run("no-op when present", func() {
		suite.mockRepo.On("FindUserByEmail", ctx, "root2@alfadli.com").Return(&domain.User{UserID: "u1"}, nil).Once()

		suite.NoError(suite.service.EnsureAdmin(ctx, "root2@alfadli.com", "secret1", "Root"))
	})

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetProfile() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "staff-1").Return(&domain.User{UserID: "staff-1", Role: domain.RoleStaff}, nil).Once()

	user, err := suite.service.GetProfile(ctx, staffB1)
	suite.Require().NoError(err)
	suite.Equal("staff-1", user.UserID)

	_, err = suite.service.GetProfile(ctx, nil)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}
