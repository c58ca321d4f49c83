package annotator

import (
	"fmt"
	"strings"
	"text/template"
)

// blockTemplate is prepended verbatim to controller entry files. It declares
// the tag plus a list and a create endpoint, both POST with bearer auth.
var blockTemplate = template.Must(template.New("block").Parse(`/**
 * @openapi
 * tags:
 *   name: {{.Entity}}
 *   description: {{.Entity}} management for {{.Platform}} platform
 */

/**
 * @openapi
 * /{{.Platform}}/{{.Stem}}/list:
 *   post:
 *     tags: [{{.Entity}}]
 *     summary: Get all {{.Lower}}s with pagination and filters
 *     security:
 *       - bearerAuth: []
 *     responses:
 *       200: { description: Success }
 */

/**
 * @openapi
 * /{{.Platform}}/{{.Stem}}/create:
 *   post:
 *     tags: [{{.Entity}}]
 *     summary: Create a new {{.Lower}}
 *     security:
 *       - bearerAuth: []
 *     responses:
 *       200: { description: Created }
 */

`))

type blockData struct {
	Entity   string
	Lower    string
	Platform string
	Stem     string
}

// Block renders the documentation block for one controller.
func Block(entity, platform, stem string) (string, error) {
	var sb strings.Builder
	err := blockTemplate.Execute(&sb, blockData{
		Entity:   entity,
		Lower:    strings.ToLower(entity),
		Platform: platform,
		Stem:     stem,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render block for %s: %w", entity, err)
	}
	return sb.String(), nil
}
