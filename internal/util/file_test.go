package util

import (
	"bytes"
	"strings"
	"testing"
)

// 最小 PNG 文件头，足够 DetectContentType 识别为 image/png
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func TestValidateMimeType(t *testing.T) {
	t.Run("图片前缀匹配", func(t *testing.T) {
		mime, err := ValidateMimeType(bytes.NewReader(pngHeader), []string{MimeImage})
		if err != nil {
			t.Fatalf("ValidateMimeType returned error: %v", err)
		}
		if mime != "image/png" {
			t.Errorf("mime = %q, want image/png", mime)
		}
	})

	t.Run("PDF 完整类型匹配", func(t *testing.T) {
		mime, err := ValidateMimeType(strings.NewReader("%PDF-1.7 fake body"), AllowedNoteMimeTypes)
		if err != nil {
			t.Fatalf("ValidateMimeType returned error: %v", err)
		}
		if mime != MimePDF {
			t.Errorf("mime = %q, want %q", mime, MimePDF)
		}
	})

	t.Run("类型不在白名单被拒", func(t *testing.T) {
		if _, err := ValidateMimeType(bytes.NewReader(pngHeader), AllowedNoteMimeTypes); err == nil {
			t.Fatal("expected error for png against note whitelist")
		}
	})

	t.Run("伪装成文档的 HTML 被拒", func(t *testing.T) {
		if _, err := ValidateMimeType(strings.NewReader("<html><body>x</body></html>"), AllowedNoteMimeTypes); err == nil {
			t.Fatal("expected error for html content")
		}
	})

	t.Run("空文件", func(t *testing.T) {
		// 空内容嗅探为 text/plain，对资料白名单放行
		mime, err := ValidateMimeType(strings.NewReader(""), AllowedNoteMimeTypes)
		if err != nil {
			t.Fatalf("ValidateMimeType returned error: %v", err)
		}
		if mime != "text/plain; charset=utf-8" {
			t.Errorf("mime = %q", mime)
		}
	})
}

func TestIsImage(t *testing.T) {
	if !IsImage("image/png") {
		t.Error("image/png should be an image")
	}
	if IsImage("application/pdf") {
		t.Error("application/pdf should not be an image")
	}
}

func TestHasAllowedExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"notes.pdf", true},
		{"NOTES.PDF", true},
		{"slides.pptx", true},
		{"archive.zip", true},
		{"script.sh", false},
		{"noext", false},
	}
	for _, c := range cases {
		if got := HasAllowedExtension(c.filename, AllowedNoteExtensions); got != c.want {
			t.Errorf("HasAllowedExtension(%q) = %v, want %v", c.filename, got, c.want)
		}
	}
}
