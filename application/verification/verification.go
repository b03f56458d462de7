package verification

import (
	"context"
	"fmt"

	"github.com/baraholka/marketplace/constant"
	"github.com/baraholka/marketplace/model"
	productrepo "github.com/baraholka/marketplace/repository/product"
	txrepo "github.com/baraholka/marketplace/repository/tx"
	userrepo "github.com/baraholka/marketplace/repository/user"
	verificationrepo "github.com/baraholka/marketplace/repository/verification"
	"github.com/baraholka/marketplace/utils/errors"
	"github.com/baraholka/marketplace/utils/logger"
	"go.uber.org/zap"
)

type VerificationApp interface {
	GetStatus(ctx context.Context, userID string) (*model.VerificationStatusResponse, error)
	ListPending(ctx context.Context) (*model.PendingVerificationListResponse, error)
	Submit(ctx context.Context, req *model.SubmitVerificationRequest) (*model.SubmitVerificationResponse, error)
	Review(ctx context.Context, req *model.ReviewVerificationRequest) (*model.ReviewVerificationResponse, error)
}

type verificationAppImpl struct {
	txRepo           txrepo.TxRepository
	verificationRepo verificationrepo.VerificationRepository
	userRepo         userrepo.UserRepository
	productRepo      productrepo.ProductRepository
}

func NewVerificationApp(txRepo txrepo.TxRepository, verificationRepo verificationrepo.VerificationRepository, userRepo userrepo.UserRepository, productRepo productrepo.ProductRepository) VerificationApp {
	return &verificationAppImpl{
		txRepo:           txRepo,
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
	}
}

func (s *verificationAppImpl) GetStatus(ctx context.Context, userID string) (*model.VerificationStatusResponse, error) {
	res, err := s.verificationRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		logger.Error("[GetStatus] err verificationRepo.GetLatestByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}
	if res != nil {
		return res, nil
	}

	state, err := s.userRepo.GetVerificationState(ctx, userID)
	if err != nil {
		logger.Error("[GetStatus] err userRepo.GetVerificationState", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}
	if state == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "User not found")
	}

	return &model.VerificationStatusResponse{
		Status:            constant.VerificationStatusNone,
		UserName:          state.Name,
		Verified:          state.Verified,
		VerificationLevel: state.VerificationLevel,
	}, nil
}

func (s *verificationAppImpl) ListPending(ctx context.Context) (*model.PendingVerificationListResponse, error) {
	items, err := s.verificationRepo.ListPending(ctx)
	if err != nil {
		logger.Error("[ListPending] err verificationRepo.ListPending", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}

	return &model.PendingVerificationListResponse{Requests: items}, nil
}

// Submit files a new verification request and overwrites the user's stored
// contact details with the submitted ones, committed as one unit. A user with
// a request still pending gets a conflict and no new row.
func (s *verificationAppImpl) Submit(ctx context.Context, req *model.SubmitVerificationRequest) (*model.SubmitVerificationResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Submit] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.verificationRepo.InsertPendingTx(ctx, tx, req)
	if err != nil {
		if ce, ok := err.(errors.CustomError); ok {
			return nil, ce
		}
		logger.Error("[Submit] err verificationRepo.InsertPendingTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}

	if err := s.userRepo.UpdateContactTx(ctx, tx, req.UserID, req.Phone, req.Email); err != nil {
		logger.Error("[Submit] err userRepo.UpdateContactTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Submit] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}
	committed = true

	return &model.SubmitVerificationResponse{
		ID:      id,
		Message: "Verification request submitted",
	}, nil
}

// Review applies an approve or reject decision. Approval cascades to the user
// and all their listings in the same transaction. There is no guard against
// re-reviewing an already decided request; the transition is simply applied
// again, refreshing reviewed_at and, for rejections, the reason.
func (s *verificationAppImpl) Review(ctx context.Context, req *model.ReviewVerificationRequest) (*model.ReviewVerificationResponse, error) {
	userID, found, err := s.verificationRepo.GetRequestUser(ctx, req.RequestID)
	if err != nil {
		logger.Error("[Review] err verificationRepo.GetRequestUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}
	if !found {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "Request not found")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Review] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if req.Action == constant.VerificationActionApprove {
		if err := s.verificationRepo.ApproveTx(ctx, tx, req.RequestID); err != nil {
			logger.Error("[Review] err verificationRepo.ApproveTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
		}
		if err := s.userRepo.SetVerifiedTx(ctx, tx, userID, constant.VerificationLevelVerified); err != nil {
			logger.Error("[Review] err userRepo.SetVerifiedTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
		}
		if err := s.productRepo.SetSellerVerifiedTx(ctx, tx, userID); err != nil {
			logger.Error("[Review] err productRepo.SetSellerVerifiedTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
		}
	} else {
		if err := s.verificationRepo.RejectTx(ctx, tx, req.RequestID, req.RejectionReason); err != nil {
			logger.Error("[Review] err verificationRepo.RejectTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Review] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}
	committed = true

	return &model.ReviewVerificationResponse{
		Message: fmt.Sprintf("Request %sd successfully", req.Action),
	}, nil
}
