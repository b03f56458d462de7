package transport

import (
	"encoding/json"
	"net/http"

	notificationapp "github.com/baraholka/marketplace/application/notification"
	productapp "github.com/baraholka/marketplace/application/product"
	verificationapp "github.com/baraholka/marketplace/application/verification"
	"github.com/baraholka/marketplace/constant"
	"github.com/baraholka/marketplace/model"
	"github.com/baraholka/marketplace/utils/errors"
	validatorx "github.com/baraholka/marketplace/utils/validator"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	NotificationApp notificationapp.NotificationApp
	ProductApp      productapp.ProductApp
	VerificationApp verificationapp.VerificationApp
}

func NewTransport(notificationApp notificationapp.NotificationApp, productApp productapp.ProductApp, verificationApp verificationapp.VerificationApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		NotificationApp: notificationApp,
		ProductApp:      productApp,
		VerificationApp: verificationApp,
	}

	// Swagger UI and metrics
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler())

	router.HandleFunc("/notifications", rh.ListNotifications).Methods(http.MethodGet)
	router.HandleFunc("/notifications", rh.CreateNotification).Methods(http.MethodPost)
	router.HandleFunc("/notifications", rh.MarkNotificationRead).Methods(http.MethodPut)

	router.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)

	router.HandleFunc("/verification", rh.GetVerification).Methods(http.MethodGet)
	router.HandleFunc("/verification", rh.SubmitVerification).Methods(http.MethodPost)
	router.HandleFunc("/verification", rh.ReviewVerification).Methods(http.MethodPut)

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.SetCustomError(constant.ErrMethodNotAllowed))
	})

	// CORS sits closest to the router so OPTIONS is answered before routing;
	// metrics and logging observe everything including preflights and 405s.
	var handler http.Handler = router
	handler = CORSMiddleware()(handler)
	handler = MetricsMiddleware()(handler)
	handler = LoggingMiddleware()(handler)

	return handler
}

// ListNotifications handler
// @Summary List notifications
// @Description Latest 50 notifications of a user plus the unread count
// @Tags Notifications
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} model.NotificationListResponse
// @Failure 400 {object} errorResponse
// @Router /notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "user_id is required"))
		return
	}

	res, err := s.NotificationApp.List(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// CreateNotification handler
// @Summary Create notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body model.CreateNotificationRequest true "Notification"
// @Success 201 {object} model.CreateNotificationResponse
// @Failure 400 {object} errorResponse
// @Router /notifications [post]
func (s *RestHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	res, err := s.NotificationApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// MarkNotificationRead handler
// @Summary Mark notification read
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body model.MarkNotificationReadRequest true "Notification ID"
// @Success 200 {object} model.MarkNotificationReadResponse
// @Failure 400 {object} errorResponse
// @Router /notifications [put]
func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.MarkNotificationReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "notification_id is required"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "notification_id is required"))
		return
	}

	res, err := s.NotificationApp.MarkRead(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// ListProducts handler
// @Summary List products
// @Description All listings with seller info and a relative post-age label
// @Tags Products
// @Produce json
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ProductApp.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Product"
// @Success 201 {object} model.CreateProductResponse
// @Failure 400 {object} errorResponse
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	res, err := s.ProductApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// GetVerification handler
// @Summary Verification status or pending queue
// @Description With user_id returns that user's status; without it, the pending review queue
// @Tags Verification
// @Produce json
// @Param user_id query string false "User ID"
// @Success 200 {object} model.VerificationStatusResponse
// @Failure 404 {object} errorResponse
// @Router /verification [get]
func (s *RestHandler) GetVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		res, err := s.VerificationApp.ListPending(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
		return
	}

	res, err := s.VerificationApp.GetStatus(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// SubmitVerification handler
// @Summary Submit verification request
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body model.SubmitVerificationRequest true "Verification request"
// @Success 201 {object} model.SubmitVerificationResponse
// @Failure 400 {object} errorResponse
// @Router /verification [post]
func (s *RestHandler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SubmitVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Missing required fields"))
		return
	}

	res, err := s.VerificationApp.Submit(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// ReviewVerification handler
// @Summary Review verification request
// @Description Approve or reject a request; approval also verifies the user and their listings
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body model.ReviewVerificationRequest true "Review decision"
// @Success 200 {object} model.ReviewVerificationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /verification [put]
func (s *RestHandler) ReviewVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReviewVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid request"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid request"))
		return
	}

	res, err := s.VerificationApp.Review(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
