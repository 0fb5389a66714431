// Package validate defines the rule specifier format, the ruleset a form
// assembles per submission, and the Validator interface forms delegate to,
// with a default implementation built on go-playground/validator.
package validate
