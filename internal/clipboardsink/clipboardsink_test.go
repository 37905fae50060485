package clipboardsink

import "testing"

func TestCopyPasteRoundTripsWhenClipboardAvailable(t *testing.T) {
	c := New()
	c.Copy([]byte("hello clipboard"))
	got := c.Paste()
	if got == nil {
		t.Skip("no system clipboard available in this environment")
	}
	if string(got) != "hello clipboard" {
		t.Fatalf("got %q", got)
	}
}
