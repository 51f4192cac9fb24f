package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/markup"
)

const maxTitleLength = 255

var (
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
)

type Category struct {
	id    kernel.UUID
	slug  string
	title string

	isConstructed bool
}

func NewCategory(id kernel.UUID, slug, title string) (*Category, error) {
	c := &Category{isConstructed: true}
	if err := errors.Join(c.setID(id), c.setSlug(slug), c.setTitle(title)); err != nil {
		return nil, err
	}
	return c, nil
}

func RestoreCategory(id kernel.UUID, slug, title string) *Category {
	return &Category{id: id, slug: slug, title: title, isConstructed: true}
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID { return c.id }
func (c *Category) Slug() string    { return c.slug }
func (c *Category) Title() string   { return c.title }

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setSlug(slug string) error {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if len(slug) > maxTitleLength || !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause("slug", fmt.Errorf("%q is not a valid slug", slug))
	}
	c.slug = slug
	return nil
}

func (c *Category) setTitle(title string) error {
	t, err := cleanTitle(title)
	if err != nil {
		return err
	}
	c.title = t
	return nil
}

// cleanTitle strips markup and enforces the shared title limits.
func cleanTitle(title string) (string, error) {
	title = markup.Clean(title)
	if title == "" {
		return "", errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"title", fmt.Errorf("%d characters exceeds %d", n, maxTitleLength),
		)
	}
	return title, nil
}
