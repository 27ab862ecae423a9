// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// CaseStudy is a portfolio entry. Slug is the path below /case-studies/.
type CaseStudy struct {
	ID            string   `json:"_id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	ClientName    string   `json:"clientName,omitempty"`
	ProjectDate   string   `json:"projectDate,omitempty"`
	FeaturedImage *Image   `json:"featuredImage,omitempty"`
	GalleryImages []Image  `json:"galleryImages,omitempty"`
	Challenge     string   `json:"challenge,omitempty"`
	Solution      string   `json:"solution,omitempty"`
	Results       string   `json:"results,omitempty"`
	Sections      Sections `json:"sections,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	WebsiteURL    string   `json:"websiteUrl,omitempty"`
	GithubURL     string   `json:"githubUrl,omitempty"`
}

// Path returns the public URL path of the case study.
func (c CaseStudy) Path() string {
	return "/case-studies/" + c.Slug
}
