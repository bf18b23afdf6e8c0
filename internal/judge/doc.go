// Package judge talks to the external language-model judge.
//
// The judge is optional. When it is configured (Azure OpenAI endpoint,
// deployment and key), Client.Scores asks it for a 0-100 score per
// category, which the blender mixes into the rule scores at a minority
// weight. Client.PageReport and Client.DomainReport ask it for Markdown
// advisory reports. Every failure is returned as an error; callers
// treat a failed judgment as absent and keep scoring.
package judge
