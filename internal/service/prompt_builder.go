package service

import (
	"strings"

	"doc-wizard-be/internal/entity"
)

// buildInitialPrompt embeds the wizard parameters into the fresh-generation
// instruction. Optional blocks are omitted when empty.
func buildInitialPrompt(state *entity.SessionState) string {
	var prompt strings.Builder

	prompt.WriteString("Generate documentation for:\n")
	prompt.WriteString("Title: " + state.Title)
	if state.Description != "" {
		prompt.WriteString("\nDescription: " + state.Description)
	}
	writeOptionalBlocks(&prompt, state)

	return prompt.String()
}

// buildFeedbackPrompt embeds the full current document, the feedback text and
// the original wizard parameters, instructing the model to preserve structure
// while applying the feedback.
func buildFeedbackPrompt(state *entity.SessionState, feedback string) string {
	var prompt strings.Builder

	prompt.WriteString("Current documentation:\n")
	prompt.WriteString(state.GeneratedContent)
	prompt.WriteString("\n\nPlease refine the above documentation with the following feedback while maintaining its structure and format:\n")
	prompt.WriteString(feedback)
	prompt.WriteString("\n\nOriginal parameters:\n")
	prompt.WriteString("Title: " + state.Title)
	prompt.WriteString("\nDescription: " + state.Description)
	writeOptionalBlocks(&prompt, state)

	return prompt.String()
}

// buildImportPrompt asks the model to both improve the supplied document and
// emit a derived TITLE:/DESCRIPTION: header ahead of it.
func buildImportPrompt(document, feedback string) string {
	var prompt strings.Builder

	prompt.WriteString("Here's an existing Confluence documentation:\n")
	prompt.WriteString(document)
	prompt.WriteString("\n\nPlease improve this documentation with the following requirements/feedback:\n")
	prompt.WriteString(feedback)
	prompt.WriteString("\n\nMake sure to:\n")
	prompt.WriteString("1. Maintain proper markdown formatting\n")
	prompt.WriteString("2. Keep the useful information from the original\n")
	prompt.WriteString("3. Address all feedback points\n")
	prompt.WriteString("4. Improve clarity and structure\n")
	prompt.WriteString("5. Add any missing sections that would be valuable\n")
	prompt.WriteString("\nAlso, please provide a concise title and description for this documentation in the following format:\n")
	prompt.WriteString("TITLE: <one line title>\n")
	prompt.WriteString("DESCRIPTION: <one paragraph description>\n")
	prompt.WriteString("\nThen provide the full documentation after that.")

	return prompt.String()
}

func writeOptionalBlocks(prompt *strings.Builder, state *entity.SessionState) {
	if state.AcceptanceCriteria != "" {
		prompt.WriteString("\nAcceptance Criteria:\n" + state.AcceptanceCriteria)
	}
	if state.TestCases != "" {
		prompt.WriteString("\nTest Cases:\n" + state.TestCases)
	}
}
