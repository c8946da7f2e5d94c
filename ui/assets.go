package ui

import "embed"

// Assets holds the page templates, the welcome text and the stylesheet
//
//go:embed templates/*.html templates/layout/*.html templates/*.md static/css/*
var Assets embed.FS
