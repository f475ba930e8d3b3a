// Package converter converts OpenAPI 2.0 (Swagger) documents to OAS 3.x.
//
// Conversion is containment-first: a pre-conversion fix-up pass papers over
// known gaps between what the parser accepts and what the conversion requires
// (missing info objects, oauth2 security definitions without flow or scopes),
// and any failure during conversion surfaces as issues on the
// ConversionResult rather than as a panic or a pipeline abort.
//
// Issues carry a severity (info, warning, critical); a result with critical
// issues is not usable as a converted document.
package converter
