package controller

import (
	"testing"
	"time"

	"github.com/crossplane/crossplane-runtime/pkg/controller"
	"github.com/google/go-cmp/cmp"
)

func TestOptionsOverrides(t *testing.T) {
	options := NewOptionsSet(Options{
		Options: controller.Options{
			PollInterval:            2 * time.Minute,
			MaxConcurrentReconciles: 3,
		},
	})
	err := options.AddOverrides(map[string]string{
		"pollInterval":                               "1m",
		"cloudfront.distribution.pollInterval":       "30s",
		"cloudfront.distribution.pollIntervalJitter": "10s",
		"route53.maxConcurrentReconciles":            "5",
	})
	if err != nil {
		t.Fatalf("AddOverrides: %s", err)
	}

	// defaults with overrides
	if diff := cmp.Diff(1*time.Minute, options.Default().PollInterval); diff != "" {
		t.Errorf("default.PollInterval: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(3, options.Default().MaxConcurrentReconciles); diff != "" {
		t.Errorf("default.MaxConcurrentReconciles: -want, +got:\n%s", diff)
	}

	// overrides with dot in the scope name
	if diff := cmp.Diff(30*time.Second, options.Get("cloudfront.distribution").PollInterval); diff != "" {
		t.Errorf("cloudfront.distribution.PollInterval: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(10*time.Second, options.Get("cloudfront.distribution").PollIntervalJitter); diff != "" {
		t.Errorf("cloudfront.distribution.PollIntervalJitter: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(3, options.Get("cloudfront.distribution").MaxConcurrentReconciles); diff != "" {
		t.Errorf("cloudfront.distribution.MaxConcurrentReconciles: -want, +got:\n%s", diff)
	}

	// overrides without dot in the scope name
	if diff := cmp.Diff(1*time.Minute, options.Get("route53").PollInterval); diff != "" {
		t.Errorf("route53.PollInterval: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(5, options.Get("route53").MaxConcurrentReconciles); diff != "" {
		t.Errorf("route53.MaxConcurrentReconciles: -want, +got:\n%s", diff)
	}

	// No overrides
	if diff := cmp.Diff(1*time.Minute, options.Get("s3.bucket").PollInterval); diff != "" {
		t.Errorf("s3.bucket.PollInterval: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(3, options.Get("s3.bucket").MaxConcurrentReconciles); diff != "" {
		t.Errorf("s3.bucket.MaxConcurrentReconciles: -want, +got:\n%s", diff)
	}
}

func TestOptionsOverridesInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"UnknownProperty": {"route53.hostedzone.burstLimit": "10"},
		"BadDuration":     {"pollInterval": "often"},
		"BadInt":          {"maxConcurrentReconciles": "many"},
	}
	for name, overrides := range cases {
		t.Run(name, func(t *testing.T) {
			options := NewOptionsSet(Options{})
			if err := options.AddOverrides(overrides); err == nil {
				t.Error("AddOverrides: expected error, got nil")
			}
		})
	}
}
