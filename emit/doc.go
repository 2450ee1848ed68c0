// Package emit encodes evaluated configurations as XML documents.
package emit
