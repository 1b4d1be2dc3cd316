package header

import (
	"fmt"
	"strings"
)

// template is the Apache-2.0 license header block. The two verbs are the
// copyright year and owner, in that order.
const template = `/*
 * Copyright %s %s
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
`

// Boilerplate is the rendered license header for one scan run. It is built
// once at startup and never changes during a run.
type Boilerplate struct {
	text string
	// withSpacing is text plus the two blank lines inserted between the
	// header and the first line of code.
	withSpacing string
}

func New(year, owner string) Boilerplate {
	text := fmt.Sprintf(template, year, owner)
	return Boilerplate{
		text:        text,
		withSpacing: text + "\n\n",
	}
}

// Text returns the exact header block, without the trailing spacing.
func (b Boilerplate) Text() string {
	return b.text
}

// Has reports whether content already starts with the exact header text.
// The comparison is byte-for-byte; no whitespace or line-ending
// normalization is performed.
func (b Boilerplate) Has(content string) bool {
	return strings.HasPrefix(content, b.text)
}

// Insert prepends the header plus two blank lines to content. The original
// content is preserved byte-for-byte after the inserted block.
func (b Boilerplate) Insert(content string) string {
	return b.withSpacing + content
}
