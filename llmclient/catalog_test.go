package llmclient

import "testing"

func TestGetModelInfoByID(t *testing.T) {
	info := GetModelInfo("moonshotai/kimi-k2-instruct")
	if info == nil {
		t.Fatal("expected catalog entry")
	}
	if !info.SupportsStructuredOutput {
		t.Error("expected structured output support")
	}
}

func TestGetModelInfoByAlias(t *testing.T) {
	info := GetModelInfo("kimi-k2")
	if info == nil {
		t.Fatal("expected alias lookup to resolve")
	}
	if info.ID != "moonshotai/kimi-k2-instruct" {
		t.Errorf("expected canonical ID, got %q", info.ID)
	}
}

func TestGetModelInfoUnknown(t *testing.T) {
	if info := GetModelInfo("no-such-model"); info != nil {
		t.Errorf("expected nil for unknown model, got %+v", info)
	}
}

func TestListModelsStructuredOnly(t *testing.T) {
	all := ListModels(false)
	structured := ListModels(true)

	if len(structured) == 0 {
		t.Fatal("expected at least one structured-output model")
	}
	if len(structured) >= len(all) {
		t.Errorf("expected structured filter to exclude some models (%d of %d)", len(structured), len(all))
	}
	for _, m := range structured {
		if !m.SupportsStructuredOutput {
			t.Errorf("model %q lacks structured output support", m.ID)
		}
	}
}

func TestDefaultStructuredModel(t *testing.T) {
	info := DefaultStructuredModel()
	if info == nil {
		t.Fatal("expected a default structured model")
	}
	if !info.SupportsStructuredOutput {
		t.Errorf("default model %q must support structured output", info.ID)
	}
}
