// Package presrag provides a local question-answering tool for presidential
// documents. It scrapes document archives into a plain-text corpus using
// browser automation, loads word-processor documents from a folder, indexes
// them for semantic retrieval, and answers natural language questions through
// an external text-generation service.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, chromem/, gemini/).
package presrag
