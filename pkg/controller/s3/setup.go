/*
Copyright 2023 The Crossplane Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package s3

import (
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/crossplane-contrib/provider-aws-website/pkg/controller/s3/bucket"
	"github.com/crossplane-contrib/provider-aws-website/pkg/controller/s3/bucketpolicy"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/controller"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/setup"
)

// Setup s3 controllers.
func Setup(mgr ctrl.Manager, o controller.OptionsSet) error {
	batch := setup.NewBatch(mgr, o, "s3")
	batch.AddXp("bucket", bucket.SetupBucket)
	batch.AddXp("bucketpolicy", bucketpolicy.SetupBucketPolicy)
	return batch.Run()
}
