package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cermont_os/internal/adapter/http/handlers/mocks"
	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func alertRouter(h *AlertHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/orders/:id/alerts", h.ListAlerts)
	r.PATCH("/v1/orders/:id/alerts/:type/read", h.MarkAlertRead)
	r.PATCH("/v1/orders/:id/alerts/:type/resolve", h.ResolveAlert)
	return r
}

func TestAlertHandler_ListAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAlertUseCase(ctrl)
	r := alertRouter(NewAlertHandler(uc))

	uc.EXPECT().ListByOrder(gomock.Any(), "ord-1").Return([]entities.Alert{
		{ID: "al-1", OrderID: "ord-1", Type: entities.AlertDocumentUnsigned, Priority: entities.AlertPriorityWarning, CreatedAt: time.Now().UTC()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/alerts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if len(resp) != 1 || resp[0]["type"] != "document-unsigned" {
		t.Fatalf("unexpected alerts: %+v", resp)
	}
}

func TestAlertHandler_MarkAlertRead(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAlertUseCase(ctrl)
		r := alertRouter(NewAlertHandler(uc))

		uc.EXPECT().
			MarkRead(gomock.Any(), "ord-1", entities.AlertType("bogus")).
			Return(entities.Alert{}, usecase.ErrInvalidAlertType)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/alerts/bogus/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no open alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAlertUseCase(ctrl)
		r := alertRouter(NewAlertHandler(uc))

		uc.EXPECT().
			MarkRead(gomock.Any(), "ord-1", entities.AlertInvoiceOverdue).
			Return(entities.Alert{}, usecase.ErrAlertNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/alerts/invoice-overdue/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAlertUseCase(ctrl)
		r := alertRouter(NewAlertHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().
			MarkRead(gomock.Any(), "ord-1", entities.AlertDocumentUnsigned).
			Return(entities.Alert{
				ID: "al-1", OrderID: "ord-1", Type: entities.AlertDocumentUnsigned,
				Read: true, ReadAt: &now, CreatedAt: now,
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/alerts/document-unsigned/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Read bool `json:"read"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response unmarshal failed: %v", err)
		}
		if !resp.Read {
			t.Fatal("expected read=true")
		}
	})
}

func TestAlertHandler_ResolveAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAlertUseCase(ctrl)
	r := alertRouter(NewAlertHandler(uc))

	now := time.Now().UTC()
	uc.EXPECT().
		Resolve(gomock.Any(), "ord-1", entities.AlertInvoiceOverdue).
		Return(entities.Alert{
			ID: "al-2", OrderID: "ord-1", Type: entities.AlertInvoiceOverdue,
			Resolved: true, ResolvedAt: &now, CreatedAt: now,
		}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/alerts/invoice-overdue/resolve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Resolved bool `json:"resolved"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if !resp.Resolved {
		t.Fatal("expected resolved=true")
	}
}
