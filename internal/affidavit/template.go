package affidavit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"affidavit/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// TemplateSource supplies the official court-form binaries. Templates are
// consumed, never generated or validated, and are immutable at rest; bytes
// are loaded into a value per request so concurrent fills for different
// form keys cannot interfere.
type TemplateSource interface {
	Template(ctx context.Context, form types.FormKind) ([]byte, error)
}

func templateFileName(form types.FormKind) string {
	return fmt.Sprintf("affidavit-%s.pdf", form)
}

// S3TemplateSource reads revision-specific templates from the configured
// bucket. A missing object is types.ErrTemplateMissing: a configuration
// error, not a recoverable condition.
type S3TemplateSource struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3TemplateSource(client *s3.Client, bucket, prefix string) *S3TemplateSource {
	return &S3TemplateSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3TemplateSource) Template(ctx context.Context, form types.FormKind) ([]byte, error) {
	key := path.Join(s.prefix, templateFileName(form))

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("template %s not in bucket %s: %w", key, s.bucket, types.ErrTemplateMissing)
		}
		return nil, fmt.Errorf("fetch template %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", key, err)
	}

	return data, nil
}

// DirTemplateSource reads templates from a local directory (development).
type DirTemplateSource struct {
	dir string
}

func NewDirTemplateSource(dir string) *DirTemplateSource {
	return &DirTemplateSource{dir: dir}
}

func (d *DirTemplateSource) Template(_ context.Context, form types.FormKind) ([]byte, error) {
	name := filepath.Join(d.dir, templateFileName(form))

	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("template %s: %w", name, types.ErrTemplateMissing)
		}
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}

	return data, nil
}
