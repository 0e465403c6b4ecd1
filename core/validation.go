// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateRunInput checks the structural constraints of a run input:
// enum fields, numeric ranges and the enrichment concurrency bound.
// Catalog resolution is the filter package's job and is not performed here.
func ValidateRunInput(in *RunInput) error {
	if in == nil {
		return fmt.Errorf("%w: input is nil", ErrValidation)
	}

	for name, op := range map[string]Operator{
		"sbaCertificationsOperator": in.SBACertificationsOperator,
		"naicsOperator":             in.NAICSOperator,
		"keywordOperator":           in.KeywordOperator,
	} {
		if err := validateOperator(op); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrValidation, name, err)
		}
	}

	if in.BusinessSize != nil {
		if err := validateRelation(in.BusinessSize.Relation); err != nil {
			return fmt.Errorf("%w: businessSize.relation: %w", ErrValidation, err)
		}
		if err := validateNonNegative("businessSize.numberOfEmployees", in.BusinessSize.NumberOfEmployees); err != nil {
			return err
		}
	}
	if in.AnnualRevenue != nil {
		if err := validateRelation(in.AnnualRevenue.Relation); err != nil {
			return fmt.Errorf("%w: annualRevenue.relation: %w", ErrValidation, err)
		}
		if err := validateNonNegative("annualRevenue.annualGrossRevenue", in.AnnualRevenue.AnnualGrossRevenue); err != nil {
			return err
		}
	}
	if in.BondingLevels != nil {
		for name, v := range map[string]*float64{
			"bondingLevels.constructionIndividual": in.BondingLevels.ConstructionIndividual,
			"bondingLevels.constructionAggregate":  in.BondingLevels.ConstructionAggregate,
			"bondingLevels.serviceIndividual":      in.BondingLevels.ServiceIndividual,
			"bondingLevels.serviceAggregate":       in.BondingLevels.ServiceAggregate,
		} {
			if err := validateNonNegative(name, v); err != nil {
				return err
			}
		}
	}

	if in.ProfileConcurrency != 0 && (in.ProfileConcurrency < 1 || in.ProfileConcurrency > 10) {
		return fmt.Errorf("%w: %w: got %d", ErrValidation, ErrInvalidConcurrency, in.ProfileConcurrency)
	}
	if in.MaxItems < 0 {
		return fmt.Errorf("%w: maxItems: %w", ErrValidation, ErrNegativeValue)
	}
	if in.RequestTimeoutSecs < 0 {
		return fmt.Errorf("%w: requestTimeoutSecs: %w", ErrValidation, ErrNegativeValue)
	}

	return nil
}

func validateOperator(op Operator) error {
	switch op {
	case "", OperatorOr, OperatorAnd:
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidOperator, op)
}

func validateRelation(rel Relation) error {
	switch rel {
	case "", RelationAtLeast, RelationNoMore:
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidRelation, rel)
}

func validateNonNegative(name string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%w: %s: %w", ErrValidation, name, ErrNegativeValue)
	}
	return nil
}
