package application

import (
	"sort"
	"strings"

	"course-order-export/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tags that mark a product as a bookable course
var courseTags = []string{"training", "community"}

// SelectCourseProducts keeps products tagged as courses and returns them sorted by
// title in English collation order
func SelectCourseProducts(products []domain.Product) []domain.CourseProduct {
	courses := make([]domain.CourseProduct, 0, len(products))
	for _, p := range products {
		if !isCourse(p.Tags) {
			continue
		}
		courses = append(courses, domain.CourseProduct{ID: p.ID, Title: p.Title})
	}

	// Collators are not safe for concurrent use
	c := collate.New(language.English)
	sort.SliceStable(courses, func(i, j int) bool {
		return c.CompareString(courses[i].Title, courses[j].Title) < 0
	})
	return courses
}

func isCourse(tags string) bool {
	lower := strings.ToLower(tags)
	for _, tag := range courseTags {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}
