// Package diagnostic collects coded errors, warnings and explanations
// produced while validating mapping profiles and explaining mapping plans.
package diagnostic
