// Package prompt renders a recipient record into the outreach instruction
// block sent to the generative model.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/coldreach/coldreach/internal/record"
)

// Profile identifies the senders written into every prompt.
type Profile struct {
	Names      string
	School     string
	Grade      string
	Coursework string
}

// noContext substitutes for an absent additional-context field.
const noContext = "None"

// gradUntil is the fixed end of the availability window.
const gradUntil = "June of 2027"

// wordLimit is stated to the model as a constraint, never enforced locally.
const wordLimit = 220

// Build renders rec, the sender profile, and the current date into the
// instruction block. It is a pure function of its inputs: the same record,
// profile, and date always produce byte-identical output. All four record
// fields appear verbatim where the template references them.
func Build(rec record.Record, profile Profile, now time.Time) string {
	context := rec.Context
	if context == "" {
		context = noContext
	}
	availableFrom := fmt.Sprintf("%s of %d", now.Month().String(), now.Year())

	var sb strings.Builder
	sb.WriteString("You are an expert academic outreach writer skilled in crafting personalized, professional cold emails for high school students seeking research opportunities.\n\n")
	sb.WriteString("You have:\n")
	fmt.Fprintf(&sb, "- Professor Name: %s\n", rec.Name)
	fmt.Fprintf(&sb, "- Research Source Link: %s\n", rec.SourceRef)
	fmt.Fprintf(&sb, "- Additional Context: %s\n\n", context)
	sb.WriteString("Use the professor's name directly in the greeting and analyze the research source to create personalized content.\n\n")
	sb.WriteString("Write a concise, polite, and well-formatted email using this exact structure:\n\n")
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "Hello %s,\n\n", rec.Name)
	sb.WriteString("I hope you are having a great day. We recently read about your research on [specific topic from the source link]. We were particularly intrigued by [provide a detailed, two-sentence analysis that demonstrates deep understanding - mention specific methodologies, findings, implications, or applications].\n\n")
	fmt.Fprintf(&sb, "Our names are %s, and we are %s at %s with a strong interest in conducting research in [related field from the knowledge source]. We both share a deep passion for scientific exploration and have completed rigorous coursework including %s.\n\n",
		profile.Names, profile.Grade, profile.School, profile.Coursework)
	fmt.Fprintf(&sb, "We would be incredibly grateful for the opportunity to gain research experience under your guidance. We would love to work with you from %s through our high school graduation in %s.\n\n", availableFrom, gradUntil)
	sb.WriteString("We would be honored to meet with you to discuss this opportunity further.\n\n")
	sb.WriteString("Best regards,\n")
	fmt.Fprintf(&sb, "%s\n", profile.Names)
	fmt.Fprintf(&sb, "%s at %s\n", titleCase(profile.Grade), profile.School)
	sb.WriteString("---\n\n")
	sb.WriteString("CRITICAL Guidelines for the research overview section:\n")
	sb.WriteString("- Write 2-3 sentences that demonstrate thorough understanding of their work\n")
	sb.WriteString("- Reference specific methodologies, experimental approaches, or analytical techniques mentioned\n")
	sb.WriteString("- Mention concrete findings, results, or implications from their research\n")
	sb.WriteString("- Use appropriate scientific terminology from their field\n")
	sb.WriteString("- Show understanding of how their work addresses important problems or advances the field\n")
	sb.WriteString("- If available, reference specific papers, grants, or collaborations mentioned\n")
	sb.WriteString("- Connect their research to broader scientific trends or applications\n\n")
	sb.WriteString("General Guidelines:\n")
	sb.WriteString("- Use the exact professor name provided in the greeting\n")
	sb.WriteString("- Replace [bracketed sections] with specific, accurate details drawn from the knowledge source\n")
	sb.WriteString("- Maintain a respectful, academic tone that shows scientific maturity\n")
	fmt.Fprintf(&sb, "- Keep the total length under %d words\n", wordLimit)
	sb.WriteString("- Ensure the message sounds genuine and demonstrates real engagement with their work\n")
	sb.WriteString("- If detailed information is limited, focus on the most substantive aspects available\n")
	sb.WriteString("- Do not include links, citations, or unnecessary jargon, aim for informed accessibility\n\n")
	sb.WriteString("Format the response as plain text ready to copy paste like:\n")
	sb.WriteString("[email body]")

	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
