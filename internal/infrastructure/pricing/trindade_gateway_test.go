package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/usecase/interfaces"
)

func testProfile() entities.CustomerProfile {
	return entities.CustomerProfile{
		Name:     "Ana Silva",
		Age:      30,
		Phone:    "11988887777",
		Email:    "ana@x.com",
		City:     "São Paulo",
		State:    "SP",
		PlanType: entities.QuotePlanFamiliar,
	}
}

func TestTrindadeGateway_NotConfigured(t *testing.T) {
	g := NewTrindadeGateway("http://127.0.0.1:1", "  ", time.Second)
	if _, err := g.FetchQuotes(context.Background(), testProfile()); !errors.Is(err, interfaces.ErrPricingNotConfigured) {
		t.Fatalf("expected ErrPricingNotConfigured, got %v", err)
	}
}

func TestTrindadeGateway_FetchQuotes(t *testing.T) {
	t.Run("maps the plan list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/cotacao" {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer key-1" {
				t.Fatalf("unexpected auth header %q", got)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["nome"] != "Ana Silva" || body["tipo_cobertura"] != "familiar" || body["qtd_pessoas"] != float64(1) {
				t.Fatalf("unexpected payload: %v", body)
			}
			if deps, ok := body["idades_dependentes"].([]any); !ok || len(deps) != 0 {
				t.Fatalf("expected empty dependents list, got %v", body["idades_dependentes"])
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"planos":[
				{"operadora":"Hapvida","nome_plano":"Nosso Plano","valor_mensal":199.9,"tipo_cobertura":"Regional","rede_credenciada":"Rede própria","carencia":"30 dias","beneficios":["Consultas"],"link":"https://x.com"},
				{"operadora":"Porto","nome_plano":"Bronze","valor_mensal":"350.50"}
			]}`))
		}))
		defer srv.Close()

		g := NewTrindadeGateway(srv.URL+"/", "key-1", time.Second)
		quotes, err := g.FetchQuotes(context.Background(), testProfile())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(quotes))
		}
		first := quotes[0]
		if first.Insurer != "Hapvida" || first.MonthlyPrice != 199.9 || first.CoverageScope != "Regional" ||
			first.ProviderNetwork != "Rede própria" || first.WaitingPeriod != "30 dias" || first.ContractLink != "https://x.com" {
			t.Fatalf("unexpected first quote: %+v", first)
		}
		second := quotes[1]
		if second.MonthlyPrice != 350.5 {
			t.Fatalf("expected string price to be parsed, got %v", second.MonthlyPrice)
		}
		if second.Benefits == nil || len(second.Benefits) != 0 || second.ContractLink != "" {
			t.Fatalf("expected defaults for missing fields, got %+v", second)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"planos":[]}`))
		}))
		defer srv.Close()

		g := NewTrindadeGateway(srv.URL, "key-1", time.Second)
		if _, err := g.FetchQuotes(context.Background(), testProfile()); err == nil {
			t.Fatalf("expected error for status 201")
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		g := NewTrindadeGateway(srv.URL, "key-1", time.Second)
		if _, err := g.FetchQuotes(context.Background(), testProfile()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()
		defer close(release)

		g := NewTrindadeGateway(srv.URL, "key-1", 50*time.Millisecond)
		if _, err := g.FetchQuotes(context.Background(), testProfile()); err == nil {
			t.Fatalf("expected timeout error")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"planos":[{"valor_mensal":"R$ 200"}]}`))
		}))
		defer srv.Close()

		g := NewTrindadeGateway(srv.URL, "key-1", time.Second)
		if _, err := g.FetchQuotes(context.Background(), testProfile()); err == nil {
			t.Fatalf("expected error for non-numeric price")
		}
	})
}

func TestFormatQuotes(t *testing.T) {
	var items []planItem
	if err := json.Unmarshal([]byte(`[{"operadora":"A","valor_mensal":null},{"operadora":"B","valor_mensal":-1}]`), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, err := formatQuotes(items); err == nil {
		t.Fatalf("expected error for negative price")
	}

	quotes, err := formatQuotes(items[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quotes[0].MonthlyPrice != 0 {
		t.Fatalf("expected null price to default to 0, got %v", quotes[0].MonthlyPrice)
	}
}
