package utils

import (
	"net/url"
	"regexp"
	"strings"

	"myblog-api/models"
)

const (
	maxTitleLength       = 200
	maxExcerptLength     = 500
	maxContentLength     = 50000
	maxTagCount          = 10
	maxTagLength         = 50
	maxDescriptionLength = 200
)

// Result is the outcome of a pure validation check. Validators are total:
// they never panic and never touch the store.
type Result struct {
	Valid bool
	Error string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(reason string) Result {
	return Result{Valid: false, Error: reason}
}

func ValidateTitle(title string) Result {
	if strings.TrimSpace(title) == "" {
		return fail("title must not be empty")
	}
	if len([]rune(title)) > maxTitleLength {
		return fail("title must not exceed 200 characters")
	}
	return ok()
}

func ValidateExcerpt(excerpt string) Result {
	if len([]rune(excerpt)) > maxExcerptLength {
		return fail("excerpt must not exceed 500 characters")
	}
	return ok()
}

func ValidateContent(content string) Result {
	if strings.TrimSpace(content) == "" {
		return fail("content must not be empty")
	}
	if len([]rune(content)) > maxContentLength {
		return fail("content must not exceed 50000 characters")
	}
	return ok()
}

func ValidateTags(tags []string) Result {
	if len(tags) > maxTagCount {
		return fail("at most 10 tags are allowed")
	}
	for _, tag := range tags {
		if len([]rune(tag)) > maxTagLength {
			return fail("a tag must not exceed 50 characters")
		}
	}
	return ok()
}

func ValidateCategoryName(name string) Result {
	if strings.TrimSpace(name) == "" {
		return fail("category name must not be empty")
	}
	if len([]rune(name)) > maxTitleLength {
		return fail("category name must not exceed 200 characters")
	}
	return ok()
}

func ValidateDescription(description string) Result {
	if len([]rune(description)) > maxDescriptionLength {
		return fail("description must not exceed 200 characters")
	}
	return ok()
}

// IsValidAbsoluteURL reports whether raw parses as an absolute URL with an
// http or https scheme.
func IsValidAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateNavigationPath checks a navigation entry path against its type:
// external entries need an absolute http/https URL, internal and category
// entries a rooted path free of markup characters.
func ValidateNavigationPath(path string, navType models.NavigationType) Result {
	if strings.TrimSpace(path) == "" {
		return fail("path must not be empty")
	}
	if navType == models.NavigationExternal {
		if !IsValidAbsoluteURL(path) {
			return fail("external links must be a valid URL")
		}
		return ok()
	}
	if !strings.HasPrefix(path, "/") {
		return fail("internal paths must start with /")
	}
	if strings.ContainsAny(path, `<>"'`) {
		return fail("path contains illegal characters")
	}
	return ok()
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) Result {
	if !emailPattern.MatchString(email) {
		return fail("invalid email address")
	}
	return ok()
}

func ValidateImageURL(raw string) Result {
	if raw == "" {
		return ok()
	}
	if !IsValidAbsoluteURL(raw) {
		return fail("cover image must be a valid URL")
	}
	return ok()
}

var textEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// SanitizeText escapes characters that are dangerous when the text is
// rendered outside the markdown pipeline (titles, excerpts, tag labels,
// navigation titles). Markdown bodies are exempt: they go through a
// renderer that does its own escaping.
func SanitizeText(text string) string {
	return textEscaper.Replace(text)
}
