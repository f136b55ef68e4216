package usecase

import (
	"context"
	"errors"
	"testing"

	"cotacao_ia/internal/domain/entities"
	mock_interfaces "cotacao_ia/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testChatSettings = ChatSettings{Model: "gpt-3.5-turbo", MaxTokens: 300, Temperature: 0.7}

const scenarioMessage = "meu nome é Ana Silva, tenho 30 anos, telefone 11988887777, email ana@x.com, moro em São Paulo, é para minha família"

func TestChatUseCase_Reply_Validations(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, testChatSettings, nil)
		_, err := uc.Reply(context.Background(), entities.ChatInput{Message: "  "})
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("invalid history role", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, testChatSettings, nil)
		_, err := uc.Reply(context.Background(), entities.ChatInput{
			Message: "oi",
			History: []entities.ConversationTurn{{Role: "tool", Content: "x"}},
		})
		if !errors.Is(err, ErrInvalidTurnRole) {
			t.Fatalf("expected ErrInvalidTurnRole, got %v", err)
		}
	})

	t.Run("completion not configured", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, testChatSettings, nil)
		_, err := uc.Reply(context.Background(), entities.ChatInput{Message: "oi"})
		if !errors.Is(err, ErrCompletionNotConfigured) {
			t.Fatalf("expected ErrCompletionNotConfigured, got %v", err)
		}
	})
}

func TestChatUseCase_Reply(t *testing.T) {
	t.Run("builds the completion request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		completion := mock_interfaces.NewMockICompletionClient(ctrl)
		uc := NewChatUseCase(completion, nil, testChatSettings, nil)

		history := []entities.ConversationTurn{
			{Role: entities.RoleUser, Content: "oi"},
			{Role: entities.RoleAssistant, Content: "Olá! Qual o seu nome?"},
		}
		completion.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.CompletionRequest) (string, error) {
			if req.Model != "gpt-3.5-turbo" || req.MaxTokens != 300 || req.Temperature != 0.7 {
				t.Fatalf("unexpected sampling settings: %+v", req)
			}
			if len(req.Messages) != 4 {
				t.Fatalf("expected 4 messages, got %d", len(req.Messages))
			}
			if req.Messages[0].Role != entities.RoleSystem || req.Messages[0].Content != ConsultantPrompt {
				t.Fatalf("expected system prompt first, got %+v", req.Messages[0])
			}
			last := req.Messages[3]
			if last.Role != entities.RoleUser || last.Content != "me chamo Bruno" {
				t.Fatalf("expected new user message last, got %+v", last)
			}
			return "Prazer, Bruno! Qual a sua idade?", nil
		})

		got, err := uc.Reply(context.Background(), entities.ChatInput{Message: "me chamo Bruno", History: history})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Response != "Prazer, Bruno! Qual a sua idade?" {
			t.Fatalf("unexpected response: %q", got.Response)
		}
		if got.ReadyForQuote {
			t.Fatalf("did not expect ready_for_quote")
		}
		if got.Suggestions == nil || len(got.Suggestions) != 0 {
			t.Fatalf("expected empty suggestions, got %v", got.Suggestions)
		}
		if got.ConversationID == "" {
			t.Fatalf("expected a derived conversation id")
		}
	})

	t.Run("completion failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		completion := mock_interfaces.NewMockICompletionClient(ctrl)
		sheet := mock_interfaces.NewMockILeadSheet(ctrl)
		uc := NewChatUseCase(completion, newTestRecorder(sheet, nil), testChatSettings, nil)

		completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

		_, err := uc.Reply(context.Background(), entities.ChatInput{Message: scenarioMessage})
		if !errors.Is(err, ErrCompletionFailed) {
			t.Fatalf("expected ErrCompletionFailed, got %v", err)
		}
	})

	t.Run("ready transcript records exactly one lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		completion := mock_interfaces.NewMockICompletionClient(ctrl)
		sheet := mock_interfaces.NewMockILeadSheet(ctrl)
		markers := mock_interfaces.NewMockILeadMarkerRepository(ctrl)
		uc := NewChatUseCase(completion, newTestRecorder(sheet, markers), testChatSettings, nil)

		completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Perfeito! Posso buscar cotações?", nil)
		markers.EXPECT().MarkRecorded(gomock.Any(), gomock.Any()).Return(true, nil)
		sheet.EXPECT().AppendRow(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, row []string) error {
			if row[1] != "Ana Silva" || row[2] != "30" || row[3] != "11988887777" || row[4] != "ana@x.com" || row[6] != "Familiar" {
				t.Fatalf("unexpected row: %v", row)
			}
			return nil
		}).Times(1)

		got, err := uc.Reply(context.Background(), entities.ChatInput{Message: scenarioMessage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.ReadyForQuote {
			t.Fatalf("expected ready_for_quote")
		}
	})

	t.Run("later ready turns do not duplicate the lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		completion := mock_interfaces.NewMockICompletionClient(ctrl)
		sheet := mock_interfaces.NewMockILeadSheet(ctrl)
		markers := mock_interfaces.NewMockILeadMarkerRepository(ctrl)
		uc := NewChatUseCase(completion, newTestRecorder(sheet, markers), testChatSettings, nil)

		completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("ok", nil).Times(2)
		claimed := map[string]bool{}
		markers.EXPECT().MarkRecorded(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (bool, error) {
			if claimed[id] {
				return false, nil
			}
			claimed[id] = true
			return true, nil
		}).Times(2)
		sheet.EXPECT().AppendRow(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		first, err := uc.Reply(context.Background(), entities.ChatInput{Message: scenarioMessage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Reply(context.Background(), entities.ChatInput{
			Message: "quero ver as cotações",
			History: []entities.ConversationTurn{
				{Role: entities.RoleUser, Content: scenarioMessage},
				{Role: entities.RoleAssistant, Content: "ok"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.ReadyForQuote {
			t.Fatalf("expected readiness to persist")
		}
		if first.ConversationID != second.ConversationID {
			t.Fatalf("expected stable conversation id, got %s and %s", first.ConversationID, second.ConversationID)
		}
	})

	t.Run("caller conversation id is used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		completion := mock_interfaces.NewMockICompletionClient(ctrl)
		sheet := mock_interfaces.NewMockILeadSheet(ctrl)
		markers := mock_interfaces.NewMockILeadMarkerRepository(ctrl)
		uc := NewChatUseCase(completion, newTestRecorder(sheet, markers), testChatSettings, nil)

		completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("ok", nil)
		markers.EXPECT().MarkRecorded(gomock.Any(), "session-42").Return(false, nil)

		got, err := uc.Reply(context.Background(), entities.ChatInput{ConversationID: " session-42 ", Message: scenarioMessage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ConversationID != "session-42" {
			t.Fatalf("expected session-42, got %s", got.ConversationID)
		}
	})
}

func TestDeriveConversationID(t *testing.T) {
	base := []entities.ConversationTurn{
		{Role: entities.RoleUser, Content: scenarioMessage},
	}
	extended := append([]entities.ConversationTurn{}, base...)
	extended = append(extended,
		entities.ConversationTurn{Role: entities.RoleAssistant, Content: "Perfeito!"},
		entities.ConversationTurn{Role: entities.RoleUser, Content: "pode buscar"},
	)

	if DeriveConversationID(base) != DeriveConversationID(extended) {
		t.Fatalf("expected the id to stay stable once ready")
	}

	other := []entities.ConversationTurn{
		{Role: entities.RoleUser, Content: "meu nome é Carla, tenho 41 anos, celular 21977776666, moro no RJ, plano individual"},
	}
	if DeriveConversationID(base) == DeriveConversationID(other) {
		t.Fatalf("expected different conversations to get different ids")
	}

	notReady := []entities.ConversationTurn{{Role: entities.RoleUser, Content: "oi"}}
	if DeriveConversationID(notReady) == DeriveConversationID(append(notReady, entities.ConversationTurn{Role: entities.RoleUser, Content: "tudo bem?"})) {
		t.Fatalf("expected the id to follow the transcript until it is ready")
	}
}
