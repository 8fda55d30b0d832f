package storage

import (
	"context"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Drivers registered for blob.OpenBucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// BucketStore is a Store backed by a gocloud.dev blob bucket: one object
// per collection key. file:// buckets give session-durable local storage,
// mem:// buckets behave like the memory store.
type BucketStore struct {
	bucket *blob.Bucket
}

// NewBucketStore opens the bucket at the given gocloud.dev URL.
func NewBucketStore(ctx context.Context, url string) (*BucketStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return &BucketStore{bucket: bucket}, nil
}

// Read returns the blob stored under key, and whether the key exists.
func (s *BucketStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to read key %s", key)
	}

	return data, true, nil
}

// Write overwrites the blob stored under key.
func (s *BucketStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

// Close releases the underlying bucket handle.
func (s *BucketStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
