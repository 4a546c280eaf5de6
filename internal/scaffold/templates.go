package scaffold

const websiteIndexTemplate = `---
title: "{{ .Title }}"
---

Welcome to {{ .Title }}. Edit index.Rmd to change this page.
`

const blogIndexTemplate = `---
title: "{{ .Title }}"
listing: posts
---
`

const aboutTemplate = `---
title: "About"
---

Some additional details about {{ .Title }}.
`

const stylesTemplate = `/* Site-wide styles. */

body {
  max-width: 46rem;
  margin: 0 auto;
  padding: 0 1rem;
  font-family: system-ui, sans-serif;
  line-height: 1.6;
}
`
