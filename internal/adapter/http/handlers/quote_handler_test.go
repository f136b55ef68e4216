package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotacao_ia/internal/adapter/http/handlers/mocks"
	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{"name":"Ana Silva","age":30,"phone":"11988887777","email":"ana@x.com","city":"São Paulo","state":"SP","plan_type":"individual"}`

func performPost(handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_GetQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		if w := performPost(h.GetQuotes, "/api/cotacao", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	invalid := []struct {
		name string
		body string
	}{
		{"missing age", `{"name":"Ana","phone":"1","email":"a@b.c","city":"X","state":"SP","plan_type":"individual"}`},
		{"missing name", `{"age":30,"phone":"1","email":"a@b.c","city":"X","state":"SP","plan_type":"individual"}`},
		{"unknown plan type", `{"name":"Ana","age":30,"phone":"1","email":"a@b.c","city":"X","state":"SP","plan_type":"premium"}`},
		{"household zero", `{"name":"Ana","age":30,"phone":"1","email":"a@b.c","city":"X","state":"SP","plan_type":"familiar","household_size":0}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

			if w := performPost(h.GetQuotes, "/api/cotacao", tt.body); w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	t.Run("simulated quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().GetQuotes(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, p entities.CustomerProfile) entities.QuoteResult {
			if p.Age != 30 || p.HouseholdSize != 1 || p.PlanType != entities.QuotePlanIndividual {
				t.Fatalf("unexpected profile: %+v", p)
			}
			return entities.QuoteResult{Quotes: pricing.Simulate(p), Source: entities.QuoteSourceSimulation}
		})

		w := performPost(h.GetQuotes, "/api/cotacao", validQuoteBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			Source  string `json:"source"`
			Quotes  []struct {
				Insurer      string  `json:"insurer"`
				MonthlyPrice float64 `json:"monthly_price"`
			} `json:"quotes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !body.Success || body.Source != "Simulation" || len(body.Quotes) != 4 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Quotes[0].Insurer != "Amil" || body.Quotes[0].MonthlyPrice != 216 {
			t.Fatalf("unexpected first quote: %+v", body.Quotes[0])
		}
	})
}

func TestQuoteHandler_RegisterInterest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		if w := performPost(h.RegisterInterest, "/api/lead", "[1,2]"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().RegisterInterest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, payload map[string]any) entities.InterestAck {
			if payload["timestamp"] != "1727571891" {
				t.Fatalf("unexpected payload: %v", payload)
			}
			return entities.InterestAck{Message: "Interesse registrado!", Protocol: "VID1727571891"}
		})

		w := performPost(h.RegisterInterest, "/api/lead", `{"timestamp":"1727571891","plano":"Amil Fácil"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["protocol"] != "VID1727571891" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
