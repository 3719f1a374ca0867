package ai

const reviewerSystemPrompt = "You are a senior code reviewer. Be specific and constructive, " +
	"give concrete examples, and format your answer in markdown."

const feedbackPrompt = `Analyze the following pull request and provide structured feedback.

Title: %s
Description: %s

Cover, with a markdown heading per section:
1. Summary of changes and their scope
2. Technical analysis: code quality, potential performance or security issues
3. Good practices worth highlighting
4. Suggested improvements
5. Open questions for the author`

const architectSystemPrompt = "You are a senior software architect writing documentation " +
	"for developers. Be clear and concise; use markdown with code blocks where relevant."

const technicalDocPrompt = `Write technical documentation for the following code changes:

%s

Cover: design and data flow, impact on APIs and interfaces, implementation and
configuration requirements, risks and side effects, and maintenance notes.`

const consultantSystemPrompt = "You are a technology consultant writing for non-technical " +
	"stakeholders. Avoid jargon; use markdown with highlighted key points."

const stakeholderDocPrompt = `Write a stakeholder summary of the following code changes:

%s

Cover: the goal of the change, business benefits, impact on users, strategic
considerations, and next steps.`
