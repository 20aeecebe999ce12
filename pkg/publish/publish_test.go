package publish

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type uploadedObject struct {
	bucket, key, contentType, body string
}

type fakeUploader struct {
	objects []uploadedObject
	failKey string
}

func (f *fakeUploader) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	key := aws.ToString(input.Key)
	if key == f.failKey {
		return nil, errors.New("access denied")
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.objects = append(f.objects, uploadedObject{
		bucket:      aws.ToString(input.Bucket),
		key:         key,
		contentType: aws.ToString(input.ContentType),
		body:        string(body),
	})
	return &manager.UploadOutput{Key: input.Key}, nil
}

// setupSiteDir lays out an output directory that also holds the build's
// private inputs, as it does with the default output_dir of ".".
func setupSiteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":       "<html>index</html>",
		"members.html":     "<html>members</html>",
		"assets/blob.kiln": "raw",
		"kiln.json":        `{"publish_config": {"bucket": "coop-site"}}`,
		"members.json":     `[{"name": "Jane Doe"}]`,
		"kiln.db":          "SQLite format 3",
		".git/config":      "[core]",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return dir
}

func TestPublish(t *testing.T) {
	dir := setupSiteDir(t)
	fake := &fakeUploader{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewWithUploader(logger, fake, &PublishConfig{Bucket: "coop-site", Prefix: "www/"})

	n, err := p.Publish(context.Background(), dir, []string{"index.html", "members.html", filepath.Join("assets", "blob.kiln")})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if n != 3 || len(fake.objects) != 3 {
		t.Fatalf("expected 3 uploads, got %d (%d recorded)", n, len(fake.objects))
	}

	sort.Slice(fake.objects, func(i, j int) bool { return fake.objects[i].key < fake.objects[j].key })
	wantKeys := []string{"www/assets/blob.kiln", "www/index.html", "www/members.html"}
	for i, obj := range fake.objects {
		if obj.key != wantKeys[i] {
			t.Errorf("object %d: key %q, want %q", i, obj.key, wantKeys[i])
		}
		if obj.bucket != "coop-site" {
			t.Errorf("object %s uploaded to bucket %q", obj.key, obj.bucket)
		}
	}
	if fake.objects[0].contentType != "application/octet-stream" {
		t.Errorf("unknown extension should fall back to octet-stream, got %q", fake.objects[0].contentType)
	}
	if !strings.HasPrefix(fake.objects[1].contentType, "text/html") {
		t.Errorf("html content type = %q", fake.objects[1].contentType)
	}
	if fake.objects[1].body != "<html>index</html>" {
		t.Errorf("unexpected body %q", fake.objects[1].body)
	}
}

func TestPublish_OnlyNamedFiles(t *testing.T) {
	dir := setupSiteDir(t)
	fake := &fakeUploader{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewWithUploader(logger, fake, &PublishConfig{Bucket: "coop-site"})

	if _, err := p.Publish(context.Background(), dir, []string{"index.html"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if len(fake.objects) != 1 || fake.objects[0].key != "index.html" {
		t.Fatalf("expected only index.html to be uploaded, got %+v", fake.objects)
	}
}

func TestPublish_RejectsPathsOutsideDir(t *testing.T) {
	dir := setupSiteDir(t)
	fake := &fakeUploader{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewWithUploader(logger, fake, &PublishConfig{Bucket: "coop-site"})

	for _, name := range []string{filepath.Join("..", "secret.txt"), filepath.Join(dir, "index.html")} {
		if _, err := p.Publish(context.Background(), dir, []string{name}); err == nil {
			t.Errorf("expected %q to be rejected", name)
		}
	}
	if len(fake.objects) != 0 {
		t.Errorf("nothing should be uploaded, got %+v", fake.objects)
	}
}

func TestPublish_UploadError(t *testing.T) {
	dir := setupSiteDir(t)
	fake := &fakeUploader{failKey: "index.html"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewWithUploader(logger, fake, &PublishConfig{Bucket: "coop-site"})

	if _, err := p.Publish(context.Background(), dir, []string{"index.html"}); err == nil || !strings.Contains(err.Error(), "access denied") {
		t.Fatalf("expected upload error to surface, got %v", err)
	}
}

func TestNew_RequiresBucket(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := New(context.Background(), logger, DefaultConfig()); !errors.Is(err, ErrNoBucket) {
		t.Errorf("expected ErrNoBucket, got %v", err)
	}
	var nilCfg *PublishConfig
	if nilCfg.Enabled() {
		t.Error("nil config should not be enabled")
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct{ prefix, rel, want string }{
		{"", "index.html", "index.html"},
		{"site", "index.html", "site/index.html"},
		{"site/", filepath.Join("a", "b.css"), "site/a/b.css"},
	}
	for _, tt := range tests {
		if got := objectKey(tt.prefix, tt.rel); got != tt.want {
			t.Errorf("objectKey(%q, %q) = %q, want %q", tt.prefix, tt.rel, got, tt.want)
		}
	}
}
