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

package acm

import (
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/crossplane-contrib/provider-aws-website/pkg/controller/acm/certificate"
	"github.com/crossplane-contrib/provider-aws-website/pkg/controller/acm/certificatevalidation"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/controller"
	"github.com/crossplane-contrib/provider-aws-website/pkg/utils/setup"
)

// Setup acm controllers.
func Setup(mgr ctrl.Manager, o controller.OptionsSet) error {
	batch := setup.NewBatch(mgr, o, "acm")
	batch.AddXp("certificate", certificate.SetupCertificate)
	batch.AddXp("certificatevalidation", certificatevalidation.SetupCertificateValidation)
	return batch.Run()
}
