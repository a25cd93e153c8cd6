package experiments

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
)

// Operator is a comparison operator of a search filter.
type Operator string

const (
	OperatorEquals               Operator = "Equals"
	OperatorNotEquals            Operator = "NotEquals"
	OperatorGreaterThan          Operator = "GreaterThan"
	OperatorGreaterThanOrEqualTo Operator = "GreaterThanOrEqualTo"
	OperatorLessThan             Operator = "LessThan"
	OperatorLessThanOrEqualTo    Operator = "LessThanOrEqualTo"
	OperatorContains             Operator = "Contains"
	OperatorExists               Operator = "Exists"
	OperatorNotExists            Operator = "NotExists"
	OperatorIn                   Operator = "In"
)

// BooleanOperator combines the conditions of a search expression.
type BooleanOperator string

const (
	BooleanOperatorAnd BooleanOperator = "And"
	BooleanOperatorOr  BooleanOperator = "Or"
)

// Filter is a single conditional statement on a resource property.
type Filter struct {
	Name     string
	Operator Operator
	Value    string
}

func (f Filter) toSDK() smtypes.Filter {
	out := smtypes.Filter{
		Name:     aws.String(f.Name),
		Operator: smtypes.Operator(f.Operator),
	}
	if f.Value != "" {
		out.Value = aws.String(f.Value)
	}

	return out
}

// NestedFilter applies a set of filters to a list property of a resource,
// requiring a single list element to satisfy all of them.
type NestedFilter struct {
	NestedPropertyName string
	Filters            []Filter
}

func (f NestedFilter) toSDK() smtypes.NestedFilters {
	filters := make([]smtypes.Filter, 0, len(f.Filters))
	for _, filter := range f.Filters {
		filters = append(filters, filter.toSDK())
	}

	return smtypes.NestedFilters{
		NestedPropertyName: aws.String(f.NestedPropertyName),
		Filters:            filters,
	}
}

// SearchExpression is a boolean conditional statement resources must satisfy
// to be included in search results. At least one filter, nested filter, or
// sub-expression must be provided. Sub-expressions nest recursively.
type SearchExpression struct {
	Filters        []Filter
	NestedFilters  []NestedFilter
	SubExpressions []SearchExpression
	// Operator combines the conditions; the service defaults to And.
	Operator BooleanOperator
}

func (e *SearchExpression) toSDK() *smtypes.SearchExpression {
	if e == nil {
		return nil
	}

	out := &smtypes.SearchExpression{
		Operator: smtypes.BooleanOperator(e.Operator),
	}

	for _, f := range e.Filters {
		out.Filters = append(out.Filters, f.toSDK())
	}
	for _, nf := range e.NestedFilters {
		out.NestedFilters = append(out.NestedFilters, nf.toSDK())
	}
	for _, sub := range e.SubExpressions {
		out.SubExpressions = append(out.SubExpressions, *sub.toSDK())
	}

	return out
}
