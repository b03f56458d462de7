package notification_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appnotification "github.com/baraholka/marketplace/application/notification"
	notificationmocks "github.com/baraholka/marketplace/mocks/repository/notification"
	"github.com/baraholka/marketplace/model"
	"github.com/stretchr/testify/mock"
)

func TestNotificationApp_List(t *testing.T) {
	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	type fields struct {
		notificationRepo *notificationmocks.NotificationRepository
	}
	type args struct {
		ctx    context.Context
		userID string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.NotificationListResponse
		wantErr  bool
	}{
		{
			name: "success: list with unread count",
			fields: fields{
				notificationRepo: notificationmocks.NewNotificationRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: "7",
			},
			mockCall: func(f fields) {
				items := []model.NotificationItem{
					{ID: 3, Type: "message", Title: "New message", Message: "hi", IsRead: false, CreatedAt: &createdAt},
					{ID: 2, Type: "system", Title: "Welcome", Message: "hello", IsRead: true, CreatedAt: &createdAt},
					{ID: 1, Type: "message", Title: "Older", Message: "old", IsRead: false, CreatedAt: &createdAt},
				}
				f.notificationRepo.
					On("ListByUser", mock.Anything, "7").
					Return(items, nil).
					Once()
			},
			want: &model.NotificationListResponse{
				Notifications: []model.NotificationItem{
					{ID: 3, Type: "message", Title: "New message", Message: "hi", IsRead: false, CreatedAt: &createdAt},
					{ID: 2, Type: "system", Title: "Welcome", Message: "hello", IsRead: true, CreatedAt: &createdAt},
					{ID: 1, Type: "message", Title: "Older", Message: "old", IsRead: false, CreatedAt: &createdAt},
				},
				UnreadCount: 2,
			},
			wantErr: false,
		},
		{
			name: "success: empty feed is zero unread",
			fields: fields{
				notificationRepo: notificationmocks.NewNotificationRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: "42",
			},
			mockCall: func(f fields) {
				f.notificationRepo.
					On("ListByUser", mock.Anything, "42").
					Return([]model.NotificationItem{}, nil).
					Once()
			},
			want: &model.NotificationListResponse{
				Notifications: []model.NotificationItem{},
				UnreadCount:   0,
			},
			wantErr: false,
		},
		{
			name: "error: repository failure",
			fields: fields{
				notificationRepo: notificationmocks.NewNotificationRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: "7",
			},
			mockCall: func(f fields) {
				f.notificationRepo.
					On("ListByUser", mock.Anything, "7").
					Return(nil, errors.New("db down")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)

			app := appnotification.NewNotificationApp(tt.fields.notificationRepo)
			got, err := app.List(tt.args.ctx, tt.args.userID)
			if (err != nil) != tt.wantErr {
				t.Errorf("List() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("List() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotificationApp_Create(t *testing.T) {
	type fields struct {
		notificationRepo *notificationmocks.NotificationRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CreateNotificationRequest
		mockCall func(f fields)
		want     *model.CreateNotificationResponse
		wantErr  bool
	}{
		{
			name: "success: create returns new id",
			fields: fields{
				notificationRepo: notificationmocks.NewNotificationRepository(t),
			},
			req: &model.CreateNotificationRequest{
				UserID:  7,
				Type:    "system",
				Title:   "Listing approved",
				Message: "Your listing is live",
			},
			mockCall: func(f fields) {
				f.notificationRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.CreateNotificationRequest")).
					Return(int64(15), nil).
					Once()
			},
			want: &model.CreateNotificationResponse{
				Success:        true,
				NotificationID: 15,
			},
			wantErr: false,
		},
		{
			name: "error: repository failure",
			fields: fields{
				notificationRepo: notificationmocks.NewNotificationRepository(t),
			},
			req: &model.CreateNotificationRequest{
				UserID:  7,
				Type:    "system",
				Title:   "Listing approved",
				Message: "Your listing is live",
			},
			mockCall: func(f fields) {
				f.notificationRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.CreateNotificationRequest")).
					Return(int64(0), errors.New("insert failed")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)

			app := appnotification.NewNotificationApp(tt.fields.notificationRepo)
			got, err := app.Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Create() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotificationApp_MarkRead(t *testing.T) {
	repo := notificationmocks.NewNotificationRepository(t)
	repo.
		On("MarkRead", mock.Anything, int64(9)).
		Return(nil).
		Twice()

	app := appnotification.NewNotificationApp(repo)

	// Marking is unconditional: the second call behaves exactly like the first.
	for i := 0; i < 2; i++ {
		got, err := app.MarkRead(context.Background(), &model.MarkNotificationReadRequest{NotificationID: 9})
		if err != nil {
			t.Fatalf("MarkRead() call %d error = %v", i+1, err)
		}
		if !got.Success {
			t.Errorf("MarkRead() call %d success = false, want true", i+1)
		}
	}
}

func TestNotificationApp_MarkRead_UnknownID(t *testing.T) {
	repo := notificationmocks.NewNotificationRepository(t)
	repo.
		On("MarkRead", mock.Anything, int64(99999)).
		Return(nil).
		Once()

	app := appnotification.NewNotificationApp(repo)

	// There is no existence check; an id nothing matches still succeeds.
	got, err := app.MarkRead(context.Background(), &model.MarkNotificationReadRequest{NotificationID: 99999})
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if !got.Success {
		t.Errorf("MarkRead() success = false, want true")
	}
}
