package gateway

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const keyPrefix = "gallery/"

// ImageStore writes artwork blobs to an S3-compatible bucket and hands
// back durable public URLs.
type ImageStore struct {
	client     *s3.Client
	bucket     string
	publicBase string

	now func() time.Time
}

func NewImageStore(accessKeyID, accessKeySecret, endpoint, bucket, publicBaseURL string) *ImageStore {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("Error initializing S3 client:", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &ImageStore{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimSuffix(publicBaseURL, "/"),
		now:        time.Now,
	}
}

// Upload stores the blob under a timestamp-prefixed key so repeated
// uploads of the same file name never collide, and returns its public URL.
func (st *ImageStore) Upload(ctx context.Context, data []byte, suggestedName string) (string, error) {
	key := fmt.Sprintf("%s%d_%s", keyPrefix, st.now().UnixMilli(), sanitizeFileName(suggestedName))

	_, err := st.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(st.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeFor(key)),
	})
	if err != nil {
		return "", &UploadError{Key: key, Err: err}
	}

	return st.publicBase + "/" + key, nil
}

// RemoveQuiet deletes the blob behind a previously returned public URL.
// Deleting the metadata row is the operation of record; storage cleanup
// is advisory, so failures are logged and swallowed.
func (st *ImageStore) RemoveQuiet(ctx context.Context, url string) {
	key, ok := strings.CutPrefix(url, st.publicBase+"/")
	if !ok || !strings.HasPrefix(key, keyPrefix) {
		log.Printf("image delete skipped, foreign url: %s", url)
		return
	}

	_, err := st.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(st.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("image delete failed for %s: %v", key, err)
	}
}

func sanitizeFileName(name string) string {
	name = path.Base(name)
	if name == "." || name == ".." || name == "/" {
		return "artwork"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "artwork"
	}
	return b.String()
}

func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
