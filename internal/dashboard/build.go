// Package dashboard assembles one render pass of the CV dashboard. Every
// optional source is loaded on its own; a failing source degrades only its
// own section.
package dashboard

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/cv-dashboard/internal/cvdata"
	"github.com/jonathan/cv-dashboard/internal/metrics"
	"github.com/jonathan/cv-dashboard/internal/types"
)

// DefaultSocialNetwork is the network whose profile link is shown next to the contact details
const DefaultSocialNetwork = "linkedin"

// Source names used for notices and metrics besides the spreadsheet sources
const (
	SourcePhoto = "photo"
	SourceMap   = "map"
)

// Sources locates the spreadsheets and images a render pass reads
type Sources struct {
	EntriesPath   string
	EntriesSheet  string
	SkillsPath    string
	SkillsSheet   string
	SocialPath    string
	SocialSheet   string
	SocialNetwork string
	ImageDir      string
}

// Builder builds a fresh Dashboard for every call to Build
type Builder struct {
	sources Sources
	profile types.Profile
	metrics *metrics.Metrics
}

// NewBuilder creates a Builder. m may be nil.
func NewBuilder(sources Sources, profile types.Profile, m *metrics.Metrics) *Builder {
	if sources.SocialNetwork == "" {
		sources.SocialNetwork = DefaultSocialNetwork
	}
	return &Builder{sources: sources, profile: profile, metrics: m}
}

// Build loads every source and shapes the data. It never fails as a whole;
// unavailable sources are reported through their section status.
func (b *Builder) Build(format string) *types.Dashboard {
	start := time.Now()

	d := &types.Dashboard{
		Profile:  b.profile,
		Timeline: b.timeline(),
		Skills:   b.skills(),
		Social:   b.social(),
		Photo:    b.photo(),
		Map:      b.location(),
	}

	b.metrics.ObserveRender(format, time.Since(start))
	return d
}

func (b *Builder) timeline() types.Section[types.Timeline] {
	if b.sources.EntriesPath == "" {
		return unavailable[types.Timeline](b, cvdata.SourceEntries, types.SectionNotFound, "No CV file is configured; the timeline is not shown.")
	}

	entries, err := cvdata.LoadEntries(b.sources.EntriesPath, b.sources.EntriesSheet)
	if err != nil {
		return failed[types.Timeline](b, cvdata.SourceEntries, err, "The CV file could not be loaded; the timeline is not shown.")
	}

	if dups := cvdata.DuplicateTitles(entries); len(dups) > 0 {
		log.Printf("[dashboard] duplicate entry titles, last row wins in the lookup: %s", strings.Join(dups, ", "))
	}

	entries = b.resolveImages(entries)
	return types.Section[types.Timeline]{
		Status: types.SectionAvailable,
		Data: types.Timeline{
			Entries: entries,
			Lookup:  cvdata.BuildEntryLookup(entries),
			Groups:  cvdata.GroupByCategory(entries),
		},
	}
}

// resolveImages returns a copy of entries with image references that do not
// exist in the image directory cleared.
func (b *Builder) resolveImages(entries []types.Entry) []types.Entry {
	resolved := make([]types.Entry, len(entries))
	copy(resolved, entries)
	for i := range resolved {
		if resolved[i].Image == "" {
			continue
		}
		if !b.imageExists(resolved[i].Image) {
			log.Printf("[dashboard] image for %q not found: %s", resolved[i].Title, resolved[i].Image)
			resolved[i].Image = ""
		}
	}
	return resolved
}

func (b *Builder) imageExists(name string) bool {
	if b.sources.ImageDir == "" || name != filepath.Base(name) {
		return false
	}
	info, err := os.Stat(filepath.Join(b.sources.ImageDir, name))
	return err == nil && info.Mode().IsRegular()
}

func (b *Builder) skills() types.Section[[]types.Skill] {
	if b.sources.SkillsPath == "" {
		return unavailable[[]types.Skill](b, cvdata.SourceSkills, types.SectionNotFound, "No skills file is configured.")
	}

	skills, err := cvdata.LoadSkills(b.sources.SkillsPath, b.sources.SkillsSheet)
	if err != nil {
		return failed[[]types.Skill](b, cvdata.SourceSkills, err, "The skills file could not be loaded.")
	}

	return types.Section[[]types.Skill]{
		Status: types.SectionAvailable,
		Data:   cvdata.FilterRatedSkills(skills),
	}
}

func (b *Builder) social() types.Section[types.SocialLinks] {
	links := types.SocialLinks{Network: b.sources.SocialNetwork}
	if b.sources.SocialPath == "" {
		s := unavailable[types.SocialLinks](b, cvdata.SourceSocial, types.SectionNotFound, "No social media file is configured.")
		s.Data = links
		return s
	}

	profiles, err := cvdata.LoadSocialProfiles(b.sources.SocialPath, b.sources.SocialSheet)
	if err != nil {
		s := failed[types.SocialLinks](b, cvdata.SourceSocial, err, "The social media file could not be loaded or is missing.")
		s.Data = links
		return s
	}

	links.URL, _ = cvdata.FindProfileURL(profiles, b.sources.SocialNetwork)
	return types.Section[types.SocialLinks]{Status: types.SectionAvailable, Data: links}
}

func (b *Builder) photo() types.Section[string] {
	name := b.profile.Photo
	if name == "" {
		return unavailable[string](b, SourcePhoto, types.SectionNotFound, "No profile photo is configured.")
	}
	if !b.imageExists(name) {
		return unavailable[string](b, SourcePhoto, types.SectionNotFound,
			fmt.Sprintf("Profile photo not found. Make sure %q is in the image directory.", name))
	}
	return types.Section[string]{Status: types.SectionAvailable, Data: name}
}

func (b *Builder) location() types.Section[*types.Location] {
	loc := b.profile.Location
	if loc == nil {
		return unavailable[*types.Location](b, SourceMap, types.SectionNotFound, "No location is configured.")
	}
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return unavailable[*types.Location](b, SourceMap, types.SectionMalformed, "The map could not be loaded.")
	}
	return types.Section[*types.Location]{Status: types.SectionAvailable, Data: loc}
}

// failed converts a load error into a section status
func failed[T any](b *Builder, source string, err error, notice string) types.Section[T] {
	status := types.SectionMalformed
	if errors.Is(err, cvdata.ErrSourceNotFound) {
		status = types.SectionNotFound
	}
	log.Printf("[dashboard] %s unavailable: %v", source, err)
	return unavailable[T](b, source, status, notice)
}

func unavailable[T any](b *Builder, source string, status types.SectionStatus, notice string) types.Section[T] {
	b.metrics.SourceFailed(source, string(status))
	return types.Section[T]{Status: status, Notice: notice}
}
