package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		msgType string
		want    Category
	}{
		{"chat is content", TypeChat, CategoryContent},
		{"image is content", TypeImage, CategoryContent},
		{"file is content", TypeFile, CategoryContent},
		{"offer is signal", TypeOffer, CategorySignal},
		{"answer is signal", TypeAnswer, CategorySignal},
		{"ice is signal", TypeICE, CategorySignal},
		{"empty type is unknown", "", CategoryUnknown},
		{"unlisted type is unknown", "status", CategoryUnknown},
		{"type matching is case sensitive", "Chat", CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.msgType); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.msgType, got, tt.want)
			}
		})
	}
}

func TestDecodeEnvelope(t *testing.T) {
	t.Run("well formed frame", func(t *testing.T) {
		env := DecodeEnvelope([]byte(`{"type":"chat","sender":"ana","payload":"hi"}`))
		if env.Type != TypeChat {
			t.Errorf("Type = %q, want %q", env.Type, TypeChat)
		}
		if env.Sender != "ana" {
			t.Errorf("Sender = %q, want %q", env.Sender, "ana")
		}
		if got := env.Category(); got != CategoryContent {
			t.Errorf("Category() = %q, want %q", got, CategoryContent)
		}
	})

	t.Run("missing type still decodes", func(t *testing.T) {
		env := DecodeEnvelope([]byte(`{"sender":"bo"}`))
		if env.Type != "" {
			t.Errorf("Type = %q, want empty", env.Type)
		}
		if got := env.Category(); got != CategoryUnknown {
			t.Errorf("Category() = %q, want %q", got, CategoryUnknown)
		}
	})

	t.Run("malformed json yields zero envelope", func(t *testing.T) {
		env := DecodeEnvelope([]byte(`this is not json {{{`))
		if env.Type != "" || env.Sender != "" {
			t.Errorf("envelope = %+v, want zero", env)
		}
		if got := env.Category(); got != CategoryUnknown {
			t.Errorf("Category() = %q, want %q", got, CategoryUnknown)
		}
	})

	t.Run("non object json yields zero envelope", func(t *testing.T) {
		env := DecodeEnvelope([]byte(`[1,2,3]`))
		if env.Type != "" {
			t.Errorf("Type = %q, want empty", env.Type)
		}
	})

	t.Run("empty frame yields zero envelope", func(t *testing.T) {
		env := DecodeEnvelope(nil)
		if got := env.Category(); got != CategoryUnknown {
			t.Errorf("Category() = %q, want %q", got, CategoryUnknown)
		}
	})
}

func TestDisplaySender(t *testing.T) {
	if got := (Envelope{Sender: "ana"}).DisplaySender(); got != "ana" {
		t.Errorf("DisplaySender() = %q, want %q", got, "ana")
	}
	if got := (Envelope{}).DisplaySender(); got != "unknown" {
		t.Errorf("DisplaySender() = %q, want %q", got, "unknown")
	}
}
