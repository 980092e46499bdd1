package telemetry

import (
	"context"
	"testing"

	"folio/internal/site"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func attrs(kvs []attribute.KeyValue) map[string]string {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.AsString()
	}
	return out
}

func TestProvider_RecordsActions(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := NewWithProcessor("folio-test", rec)
	if !p.Enabled() {
		t.Fatal("SDK provider should be enabled")
	}

	post := site.Post{ID: "kant", Title: "Reading Kant"}
	p.Navigated(site.PageHome, site.PageBlog)
	p.SelectedPost(post)
	p.ClearedPost(&post)
	p.ClearedPost(nil)

	spans := rec.Ended()
	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d", len(spans))
	}

	wantNames := []string{SpanNavigate, SpanSelectPost, SpanClearPost, SpanClearPost}
	for i, s := range spans {
		if s.Name() != wantNames[i] {
			t.Errorf("span %d: name %q, want %q", i, s.Name(), wantNames[i])
		}
	}

	nav := attrs(spans[0].Attributes())
	if nav["folio.page.from"] != "Home" || nav["folio.page.to"] != "Blog" {
		t.Errorf("navigate attrs = %v", nav)
	}
	sel := attrs(spans[1].Attributes())
	if sel["folio.post.id"] != "kant" || sel["folio.post.title"] != "Reading Kant" {
		t.Errorf("select attrs = %v", sel)
	}
	if got := attrs(spans[2].Attributes())["folio.post.id"]; got != "kant" {
		t.Errorf("clear attrs post id = %q", got)
	}
	if n := len(spans[3].Attributes()); n != 0 {
		t.Errorf("clear with no previous post should carry no attrs, got %d", n)
	}

	svc, ok := spans[0].Resource().Set().Value("service.name")
	if !ok || svc.AsString() != "folio-test" {
		t.Errorf("service.name = %v (ok=%v)", svc.AsString(), ok)
	}

	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := New(context.Background(), "folio")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Enabled() {
		t.Error("provider should be disabled without an endpoint")
	}
	// Recording on a disabled provider is a no-op.
	p.Navigated(site.PageHome, site.PageData)
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	p.Navigated(site.PageHome, site.PageAbout)
	p.SelectedPost(site.Post{})
	p.ClearedPost(nil)
	if p.Enabled() {
		t.Error("nil provider is not enabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
