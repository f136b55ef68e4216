package leadparse

import (
	"testing"

	"cotacao_ia/internal/domain/entities"
)

const fullTranscript = "meu nome é Ana Silva, tenho 30 anos, telefone 11988887777, email ana@x.com, moro em São Paulo, é para minha família"

func TestExtract_FullTranscript(t *testing.T) {
	got := Extract(fullTranscript)

	if got.Name != "Ana Silva" {
		t.Fatalf("expected name Ana Silva, got %q", got.Name)
	}
	if got.Age != "30" {
		t.Fatalf("expected age 30, got %q", got.Age)
	}
	if got.Phone != "11988887777" {
		t.Fatalf("expected phone digits, got %q", got.Phone)
	}
	if got.Email != "ana@x.com" {
		t.Fatalf("expected email ana@x.com, got %q", got.Email)
	}
	if got.Location != "em São Paulo" {
		t.Fatalf("expected location captured after moro, got %q", got.Location)
	}
	if got.PlanType != entities.PlanTypeFamiliar {
		t.Fatalf("expected Familiar, got %q", got.PlanType)
	}
	if got.HouseholdSize != "" {
		t.Fatalf("expected no household size, got %q", got.HouseholdSize)
	}
}

func TestExtract_Fields(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field func(entities.LeadRecord) string
		want  string
	}{
		{"name labelled", "nome: Maria", func(l entities.LeadRecord) string { return l.Name }, "Maria"},
		{"name first pattern wins", "nome: Carla, mas me chamo Carlinha", func(l entities.LeadRecord) string { return l.Name }, "Carlinha"},
		{"name case insensitive", "MEU NOME É Bruno", func(l entities.LeadRecord) string { return l.Name }, "Bruno"},
		{"name missing", "oi, quero um plano", func(l entities.LeadRecord) string { return l.Name }, ""},
		{"age singular", "meu filho tem 1 ano", func(l entities.LeadRecord) string { return l.Age }, "1"},
		{"age without space", "tenho 42anos", func(l entities.LeadRecord) string { return l.Age }, "42"},
		{"phone formatted", "meu celular é (11) 98888-7777", func(l entities.LeadRecord) string { return l.Phone }, "(11) 98888-7777"},
		{"phone landline", "fixo 21 3333-4444", func(l entities.LeadRecord) string { return l.Phone }, "21 3333-4444"},
		{"email", "contato: joao.p+seguro@empresa.com.br ok", func(l entities.LeadRecord) string { return l.Email }, "joao.p+seguro@empresa.com.br"},
		{"location keyword order", "moro no bairro Centro", func(l entities.LeadRecord) string { return l.Location }, "Centro"},
		{"location labelled", "CIDADE: Campinas", func(l entities.LeadRecord) string { return l.Location }, "Campinas"},
		{"location vivo", "vivo em Recife", func(l entities.LeadRecord) string { return l.Location }, "em Recife"},
		{"household", "somos 4 pessoas em casa", func(l entities.LeadRecord) string { return l.HouseholdSize }, "4"},
		{"household singular", "só 1 pessoa", func(l entities.LeadRecord) string { return l.HouseholdSize }, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field(Extract(tt.text)); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectPlanType(t *testing.T) {
	tests := []struct {
		text string
		want entities.PlanType
	}{
		{"é para minha família", entities.PlanTypeFamiliar},
		{"É PARA A FAMÍLIA TODA", entities.PlanTypeFamiliar},
		{"plano para minha empresa", entities.PlanTypeEmpresarial},
		{"família e empresa", entities.PlanTypeFamiliar},
		{"só para mim", entities.PlanTypeIndividual},
		{"", entities.PlanTypeIndividual},
	}
	for _, tt := range tests {
		if got := DetectPlanType(tt.text); got != tt.want {
			t.Errorf("DetectPlanType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtract_MissesLeaveFieldsEmpty(t *testing.T) {
	got := Extract("bom dia")
	want := entities.LeadRecord{PlanType: entities.PlanTypeIndividual}
	if got != want {
		t.Fatalf("expected only the default plan type, got %+v", got)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	first := Extract(fullTranscript)
	second := Extract(fullTranscript)
	if first != second {
		t.Fatalf("extraction is not idempotent: %+v vs %+v", first, second)
	}
}
