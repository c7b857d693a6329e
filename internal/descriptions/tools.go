package descriptions

// Tool descriptions with practical examples and use cases

const (
	AnalyzeContractDescription = `Run the full contract analysis pipeline over raw text: clause segmentation and typing, per-clause risk tiers, aggregate risk score, metadata extraction (parties, key dates, payment terms, governing law), document-type classification, and a summary.

**When to use:** You have contract text and want a structured, auditable breakdown in one call.

**Examples:**
• Review a service agreement: "Analyze this SERVICE AGREEMENT and show me the high-risk clauses"
• Due diligence: "Extract parties, effective date and governing law from this contract"

**Best practices:** Pass the complete contract text; clause ordering follows document order. The optional language parameter overrides automatic en/ar detection.`

	ExtractEntitiesDescription = `Extract named entities (people, organizations, locations, dates, monetary values) from legal document text, merged and deduplicated across the configured extractors.

**When to use:** You need the who/where/when/how-much of a document without full contract analysis.

**Examples:**
• Party discovery: "List every organization mentioned in this filing"
• Financial review: "Pull all monetary values from this settlement"

**Best practices:** With no statistical models configured, dates and monetary values still come from pattern matching; people and organizations need a model.`

	ClassifyDocumentDescription = `Classify a legal document as contract, legal_opinion, court_filing, corporate_document or regulatory_filing, with a confidence score, language tag and summary.

**When to use:** Routing or triaging documents before deeper analysis.

**Examples:**
• Intake triage: "What kind of document is this?"
• Batch routing: "Classify each uploaded document and route contracts to review"

**Best practices:** Confidence reflects keyword-signal strength; "unknown" with confidence 0 means no signal fired.`

	SummarizeDescription = `Generate a summary of document text. Uses the configured summarization model when available, otherwise the first sentences of the document.

**When to use:** You need a short overview of a long document.

**Best practices:** max_length bounds the summary length in words; the fallback is deterministic and extractive.`

	AnswerQuestionDescription = `Answer a question against document text using the configured question-answering model.

**When to use:** Targeted fact lookup inside a document ("What is the termination notice period?").

**Best practices:** Requires a configured model provider; errors when none is available. Long documents are truncated to the model context.`

	AnalyzeSentimentDescription = `Score the sentiment of text as positive, neutral or negative. Uses the configured sentiment model when available, otherwise a small lexicon.

**When to use:** Gauging tone of correspondence or negotiation drafts.`

	ValidateFileDescription = `Verify PDF file integrity and readability before processing.

**When to use:** Before reading or analyzing any PDF file, especially in automated workflows or when handling user uploads.

**Examples:**
• Upload verification: "Check uploaded contract.pdf is valid before analysis"
• Quality control: "Verify scanned-agreement.pdf is readable before extraction"

**Common workflow:** legal_validate_file → legal_read_file or legal_analyze_file if valid.`

	ReadFileDescription = `Extract plain text from a PDF file in the document directory.

**When to use:** You want the raw text of a PDF before deciding which analysis to run.

**Best practices:** Validate unknown files first; extraction skips pages that fail to decode.`

	AnalyzeFileDescription = `Extract text from a PDF file and run the full contract analysis pipeline on it in one step.

**When to use:** Analyzing a contract that exists as a PDF on disk.

**Common workflow:** legal_read_file to inspect → legal_analyze_file for the structured result.`

	ServerInfoDescription = `Get server information: version, document directory, which optional statistical models are configured, and the available tools.

**When to use:** First call in a session, or when diagnosing why model-backed features are degraded.`
)
