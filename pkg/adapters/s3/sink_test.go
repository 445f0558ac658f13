package s3

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/archive"
	"github.com/aretw0/quicknotes/pkg/core"
)

type fakePutAPI struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newFakePutAPI() *fakePutAPI {
	return &fakePutAPI{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakePutAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := *in.Bucket + "/" + *in.Key
	f.objects[key] = body
	f.types[key] = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func TestSink_Put(t *testing.T) {
	api := newFakePutAPI()
	sink := newSink(api, "notes-bucket", "/backups/daily/")

	require.NoError(t, sink.Put(context.Background(), "a.md", []byte("hello")))
	assert.Equal(t, []byte("hello"), api.objects["notes-bucket/backups/daily/a.md"])
	assert.Equal(t, markdownContentType, api.types["notes-bucket/backups/daily/a.md"])
}

func TestSink_KeyWithoutPrefix(t *testing.T) {
	sink := newSink(newFakePutAPI(), "b", "")
	assert.Equal(t, "x.md", sink.Key("x.md"))
}

func TestSink_ExportArchive(t *testing.T) {
	api := newFakePutAPI()
	sink := newSink(api, "b", "qn")
	notes := []core.Note{core.NewNote("one", "1"), core.NewNote("two", "2")}

	n, err := archive.Export(context.Background(), notes, sink)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, api.objects, 2)
	assert.Contains(t, api.objects, "b/qn/"+archive.FileName(notes[0]))
}

func TestSink_PutError(t *testing.T) {
	api := newFakePutAPI()
	api.err = errors.New("access denied")
	sink := newSink(api, "b", "")

	err := sink.Put(context.Background(), "a.md", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://b/a.md")
}

func TestNew(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)

	sink, err := New(context.Background(), Config{
		Bucket:          "b",
		Endpoint:        "http://127.0.0.1:9000",
		PathStyle:       true,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
	})
	require.NoError(t, err)
	assert.Equal(t, "b", sink.bucket)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUICKNOTES_S3_BUCKET", "env-bucket")
	t.Setenv("QUICKNOTES_S3_PATH_STYLE", "TRUE")
	cfg := ConfigFromEnv()
	assert.Equal(t, "env-bucket", cfg.Bucket)
	assert.True(t, cfg.PathStyle)
}
