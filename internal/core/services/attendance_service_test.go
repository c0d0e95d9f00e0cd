package services_test

import (
	"context"
	"testing"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/core/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockAttendanceRepository
	mockEmployee *MockEmployeeRepository
	service      portssvc.AttendanceSvcFacade
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAttendanceRepository)
	suite.mockEmployee = new(MockEmployeeRepository)
	suite.service = services.NewAttendanceService(suite.mockRepo, services.WithAttendanceEmployeeReader(suite.mockEmployee))
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}

func (suite *AttendanceServiceTestSuite) TestCreate_StaffHomeBranch() {
	ctx := context.Background()
	suite.mockEmployee.On("FindEmployeeByID", ctx, "e1").Return(&domain.Employee{EmployeeID: "e1", BranchID: "B1"}, nil).Once()
	suite.mockRepo.On("SaveAttendance", ctx, mock.MatchedBy(func(a domain.Attendance) bool {
		return a.BranchID == "B1" && a.Status == domain.AttendancePresent
	})).Return(nil).Once()

	record, err := suite.service.CreateAttendance(ctx, staffB1, dto.CreateAttendanceRequest{
		EmployeeID: "e1", Date: "2024-03-04", Status: domain.AttendancePresent,
	})

	suite.Require().NoError(err)
	suite.Equal("B1", record.BranchID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestCreate_StaffOtherBranchDenied() {
	_, err := suite.service.CreateAttendance(context.Background(), staffB1, dto.CreateAttendanceRequest{
		EmployeeID: "e1", BranchID: "B2", Date: "2024-03-04", Status: domain.AttendancePresent,
	})

	suite.Equal("You can only create attendance in your branch", apperrors.Message(err, ""))
	suite.mockEmployee.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestCreate_InvalidDate() {
	_, err := suite.service.CreateAttendance(context.Background(), adminID, dto.CreateAttendanceRequest{
		EmployeeID: "e1", BranchID: "B1", Date: "04/03/2024", Status: domain.AttendanceLate,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AttendanceServiceTestSuite) TestList_StaffPinned() {
	ctx := context.Background()
	suite.mockRepo.On("ListAttendance", ctx, mock.MatchedBy(func(f domain.AttendanceFilter) bool {
		return f.BranchID == "B1" && f.EmployeeID == "e1" && f.Period.From != nil && f.Period.To == nil
	})).Return(nil, nil).Once()

	records, err := suite.service.ListAttendance(ctx, staffB1, dto.ListAttendanceParams{
		BranchID:        "B2",
		EmployeeID:      "e1",
		DateRangeParams: dto.DateRangeParams{StartDate: "2024-03-01"},
	})

	suite.Require().NoError(err)
	suite.Empty(records)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AttendanceServiceTestSuite) TestDelete_ManagerDenied() {
	err := suite.service.DeleteAttendance(context.Background(), managerID, "a1")

	suite.Equal("Managers cannot delete attendance", apperrors.Message(err, ""))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAttendanceByID", mock.Anything, mock.Anything)
}

func (suite *AttendanceServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAttendanceByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateAttendance(ctx, staffB1, "missing", dto.UpdateAttendanceRequest{Notes: strPtr("x")})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
