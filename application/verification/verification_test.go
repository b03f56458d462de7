package verification_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appverification "github.com/baraholka/marketplace/application/verification"
	"github.com/baraholka/marketplace/constant"
	productmocks "github.com/baraholka/marketplace/mocks/repository/product"
	txmocks "github.com/baraholka/marketplace/mocks/repository/tx"
	usermocks "github.com/baraholka/marketplace/mocks/repository/user"
	verificationmocks "github.com/baraholka/marketplace/mocks/repository/verification"
	"github.com/baraholka/marketplace/model"
	cerr "github.com/baraholka/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

type mocks struct {
	txRepo           *txmocks.TxRepository
	verificationRepo *verificationmocks.VerificationRepository
	userRepo         *usermocks.UserRepository
	productRepo      *productmocks.ProductRepository
}

func newMocks(t *testing.T) mocks {
	return mocks{
		txRepo:           txmocks.NewTxRepository(t),
		verificationRepo: verificationmocks.NewVerificationRepository(t),
		userRepo:         usermocks.NewUserRepository(t),
		productRepo:      productmocks.NewProductRepository(t),
	}
}

func newApp(m mocks) appverification.VerificationApp {
	return appverification.NewVerificationApp(m.txRepo, m.verificationRepo, m.userRepo, m.productRepo)
}

func TestVerificationApp_GetStatus(t *testing.T) {
	submittedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	level := "verified"

	tests := []struct {
		name     string
		userID   string
		mockCall func(m mocks)
		want     *model.VerificationStatusResponse
		wantErr  bool
		wantCode int
	}{
		{
			name:   "success: latest request with user fields",
			userID: "5",
			mockCall: func(m mocks) {
				m.verificationRepo.
					On("GetLatestByUser", mock.Anything, "5").
					Return(&model.VerificationStatusResponse{
						ID:                3,
						Status:            "approved",
						Phone:             "+79001234567",
						Email:             "anna@example.com",
						DocumentType:      "passport",
						SubmittedAt:       &submittedAt,
						UserName:          "Анна",
						Verified:          true,
						VerificationLevel: &level,
					}, nil).
					Once()
			},
			want: &model.VerificationStatusResponse{
				ID:                3,
				Status:            "approved",
				Phone:             "+79001234567",
				Email:             "anna@example.com",
				DocumentType:      "passport",
				SubmittedAt:       &submittedAt,
				UserName:          "Анна",
				Verified:          true,
				VerificationLevel: &level,
			},
		},
		{
			name:   "success: no request yet yields status none",
			userID: "6",
			mockCall: func(m mocks) {
				m.verificationRepo.
					On("GetLatestByUser", mock.Anything, "6").
					Return(nil, nil).
					Once()
				m.userRepo.
					On("GetVerificationState", mock.Anything, "6").
					Return(&model.UserVerificationState{Name: "Борис", Verified: false}, nil).
					Once()
			},
			want: &model.VerificationStatusResponse{
				Status:   constant.VerificationStatusNone,
				UserName: "Борис",
				Verified: false,
			},
		},
		{
			name:   "error: unknown user is not found",
			userID: "404",
			mockCall: func(m mocks) {
				m.verificationRepo.
					On("GetLatestByUser", mock.Anything, "404").
					Return(nil, nil).
					Once()
				m.userRepo.
					On("GetVerificationState", mock.Anything, "404").
					Return(nil, nil).
					Once()
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:   "error: repository failure",
			userID: "5",
			mockCall: func(m mocks) {
				m.verificationRepo.
					On("GetLatestByUser", mock.Anything, "5").
					Return(nil, errors.New("db down")).
					Once()
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			tt.mockCall(m)

			got, err := newApp(m).GetStatus(context.Background(), tt.userID)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetStatus() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				ce, ok := err.(cerr.CustomError)
				if !ok {
					t.Fatalf("GetStatus() error type = %T, want CustomError", err)
				}
				if ce.ErrorHTTPCode() != tt.wantCode {
					t.Errorf("GetStatus() code = %d, want %d", ce.ErrorHTTPCode(), tt.wantCode)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetStatus() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerificationApp_ListPending(t *testing.T) {
	submittedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	m := newMocks(t)
	m.verificationRepo.
		On("ListPending", mock.Anything).
		Return([]model.PendingVerificationItem{
			{ID: 1, UserID: 5, Status: "pending", Phone: "+79001234567", Email: "anna@example.com", SubmittedAt: &submittedAt, UserName: "Анна", UserRating: 4.8},
			{ID: 2, UserID: 6, Status: "pending", Phone: "+79007654321", Email: "boris@example.com", SubmittedAt: &submittedAt, UserName: "Борис", UserRating: 0},
		}, nil).
		Once()

	got, err := newApp(m).ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}
	if len(got.Requests) != 2 {
		t.Fatalf("ListPending() len = %d, want 2", len(got.Requests))
	}
	if got.Requests[0].ID != 1 {
		t.Errorf("ListPending() first id = %d, want oldest first", got.Requests[0].ID)
	}
}

func TestVerificationApp_Submit(t *testing.T) {
	req := &model.SubmitVerificationRequest{
		UserID:         5,
		Phone:          "+79001234567",
		Email:          "anna@example.com",
		DocumentType:   "passport",
		DocumentNumber: "4510 123456",
	}

	tests := []struct {
		name     string
		mockCall func(m mocks)
		want     *model.SubmitVerificationResponse
		wantErr  bool
		wantCode int
		wantMsg  string
	}{
		{
			name: "success: request inserted and contact overwritten in one commit",
			mockCall: func(m mocks) {
				m.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				m.verificationRepo.
					On("InsertPendingTx", mock.Anything, mock.Anything, req).
					Return(int64(12), nil).
					Once()
				m.userRepo.
					On("UpdateContactTx", mock.Anything, mock.Anything, int64(5), "+79001234567", "anna@example.com").
					Return(nil).
					Once()
				m.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.SubmitVerificationResponse{
				ID:      12,
				Message: "Verification request submitted",
			},
		},
		{
			name: "error: pending request already exists",
			mockCall: func(m mocks) {
				m.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				m.verificationRepo.
					On("InsertPendingTx", mock.Anything, mock.Anything, req).
					Return(int64(0), cerr.SetCustomErrorMessage(constant.ErrConflict, "Pending request already exists")).
					Once()
				m.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:  true,
			wantCode: 400,
			wantMsg:  "Pending request already exists",
		},
		{
			name: "error: contact update failure rolls everything back",
			mockCall: func(m mocks) {
				m.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				m.verificationRepo.
					On("InsertPendingTx", mock.Anything, mock.Anything, req).
					Return(int64(12), nil).
					Once()
				m.userRepo.
					On("UpdateContactTx", mock.Anything, mock.Anything, int64(5), "+79001234567", "anna@example.com").
					Return(errors.New("update failed")).
					Once()
				m.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			tt.mockCall(m)

			got, err := newApp(m).Submit(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Submit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				ce, ok := err.(cerr.CustomError)
				if !ok {
					t.Fatalf("Submit() error type = %T, want CustomError", err)
				}
				if ce.ErrorHTTPCode() != tt.wantCode {
					t.Errorf("Submit() code = %d, want %d", ce.ErrorHTTPCode(), tt.wantCode)
				}
				if tt.wantMsg != "" && ce.Error() != tt.wantMsg {
					t.Errorf("Submit() message = %q, want %q", ce.Error(), tt.wantMsg)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Submit() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerificationApp_Review(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.ReviewVerificationRequest
		mockCall func(m mocks)
		want     *model.ReviewVerificationResponse
		wantErr  bool
		wantCode int
	}{
		{
			name: "approve cascades to user and listings in one commit",
			req:  &model.ReviewVerificationRequest{RequestID: 3, Action: "approve"},
			mockCall: func(m mocks) {
				m.verificationRepo.
					On("GetRequestUser", mock.Anything, int64(3)).
					Return(int64(5), true, nil).
					Once()
				m.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				m.verificationRepo.
					On("ApproveTx", mock.Anything, mock.Anything, int64(3)).
					Return(nil).
					Once()
				m.userRepo.
					On("SetVerifiedTx", mock.Anything, mock.Anything, int64(5), "verified").
					Return(nil).
					Once()
				m.productRepo.
					On("SetSellerVerifiedTx", mock.Anything, mock.Anything, int64(5)).
					Return(nil).
					Once()
				m.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.ReviewVerificationResponse{Message: "Request approved successfully"},
		},
		{
			name: "reject stores the reason without cascades",
			req:  &model.ReviewVerificationRequest{RequestID: 3, Action: "reject", RejectionReason: "документы не читаются"},
			mockCall: func(m mocks) {
				m.verificationRepo.
					On("GetRequestUser", mock.Anything, int64(3)).
					Return(int64(5), true, nil).
					Once()
				m.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				m.verificationRepo.
					On("RejectTx", mock.Anything, mock.Anything, int64(3), "документы не читаются").
					Return(nil).
					Once()
				m.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			// Message is built as action + "d".
			want: &model.ReviewVerificationResponse{Message: "Request rejectd successfully"},
		},
		{
			name: "re-reviewing a decided request applies the transition again",
			req:  &model.ReviewVerificationRequest{RequestID: 3, Action: "approve"},
			mockCall: func(m mocks) {
				// Same path as a first review: there is no pending-state guard.
				m.verificationRepo.
					On("GetRequestUser", mock.Anything, int64(3)).
					Return(int64(5), true, nil).
					Once()
				m.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				m.verificationRepo.
					On("ApproveTx", mock.Anything, mock.Anything, int64(3)).
					Return(nil).
					Once()
				m.userRepo.
					On("SetVerifiedTx", mock.Anything, mock.Anything, int64(5), "verified").
					Return(nil).
					Once()
				m.productRepo.
					On("SetSellerVerifiedTx", mock.Anything, mock.Anything, int64(5)).
					Return(nil).
					Once()
				m.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.ReviewVerificationResponse{Message: "Request approved successfully"},
		},
		{
			name: "error: unknown request id",
			req:  &model.ReviewVerificationRequest{RequestID: 77, Action: "approve"},
			mockCall: func(m mocks) {
				m.verificationRepo.
					On("GetRequestUser", mock.Anything, int64(77)).
					Return(int64(0), false, nil).
					Once()
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "error: approve cascade failure rolls back",
			req:  &model.ReviewVerificationRequest{RequestID: 3, Action: "approve"},
			mockCall: func(m mocks) {
				m.verificationRepo.
					On("GetRequestUser", mock.Anything, int64(3)).
					Return(int64(5), true, nil).
					Once()
				m.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				m.verificationRepo.
					On("ApproveTx", mock.Anything, mock.Anything, int64(3)).
					Return(nil).
					Once()
				m.userRepo.
					On("SetVerifiedTx", mock.Anything, mock.Anything, int64(5), "verified").
					Return(errors.New("update failed")).
					Once()
				m.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			tt.mockCall(m)

			got, err := newApp(m).Review(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Review() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				ce, ok := err.(cerr.CustomError)
				if !ok {
					t.Fatalf("Review() error type = %T, want CustomError", err)
				}
				if ce.ErrorHTTPCode() != tt.wantCode {
					t.Errorf("Review() code = %d, want %d", ce.ErrorHTTPCode(), tt.wantCode)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Review() got = %v, want %v", got, tt.want)
			}
		})
	}
}
