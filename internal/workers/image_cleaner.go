// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/store"
)

// ImageCleaner deletes stored images in the background. References are
// queued by [ImageCleaner.Remove] and deleted by [ImageCleaner.Run]. When the
// queue is full or the worker has stopped, the image is deleted inline.
type ImageCleaner struct {
	images  store.ImageStorage
	queue  chan string

	// mu orders enqueues against the stop in Run, so nothing is queued
	// after the final drain.
	mu      sync.Mutex
	stopped bool

	logger *logger.Logger
}

// NewImageCleaner constructs an ImageCleaner with a queue of queueSize
// references. A non-positive queueSize makes every removal inline.
func NewImageCleaner(images store.ImageStorage, queueSize int, logger *logger.Logger) *ImageCleaner {
	if queueSize < 0 {
		queueSize = 0
	}

	return &ImageCleaner{
		images: images,
		queue:  make(chan string, queueSize),
		logger: logger,
	}
}

// Remove implements [ImageRemover]. References outside the storage's URL
// prefix (placeholders, remote images) are skipped.
func (c *ImageCleaner) Remove(ctx context.Context, ref string) {
	if ref == "" || !strings.HasPrefix(ref, c.images.URLPrefix()) {
		return
	}

	if c.enqueue(ref) {
		return
	}

	c.delete(ctx, ref)
}

// enqueue reports whether ref was queued. It returns false once Run has
// stopped or when the queue is full.
func (c *ImageCleaner) enqueue(ref string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return false
	}

	select {
	case c.queue <- ref:
		return true
	default:
		c.logger.Warn().Str("func", "*ImageCleaner.enqueue").Msg("cleanup queue is full, deleting inline")
		return false
	}
}

// Run implements [Worker]. After ctx is done the queue is drained before
// returning.
func (c *ImageCleaner) Run(ctx context.Context) error {
	c.logger.Info().Str("func", "*ImageCleaner.Run").Int("queue_size", cap(c.queue)).Msg("image cleaner started")

	bg := c.logger.WithContext(context.WithoutCancel(ctx))
	for {
		select {
		case ref := <-c.queue:
			c.delete(bg, ref)
		case <-ctx.Done():
			c.mu.Lock()
			c.stopped = true
			c.mu.Unlock()

			c.drain(bg)
			c.logger.Info().Str("func", "*ImageCleaner.Run").Msg("image cleaner stopped")
			return nil
		}
	}
}

func (c *ImageCleaner) drain(ctx context.Context) {
	for {
		select {
		case ref := <-c.queue:
			c.delete(ctx, ref)
		default:
			return
		}
	}
}

func (c *ImageCleaner) delete(ctx context.Context, ref string) {
	if err := c.images.Delete(ctx, ref); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ImageCleaner.delete").Str("image", ref).Msg("failed to delete image")
		return
	}

	logger.FromContext(ctx).Debug().Str("func", "*ImageCleaner.delete").Str("image", ref).Msg("image deleted")
}
