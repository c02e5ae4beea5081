package reconcile

import "github.com/arkadas/deskgrid/internal/icons"

// FileMatch is a desktop file that partially matches an existing icon:
// same name with a different path, or same directory with a different name.
type FileMatch struct {
	Name string
	Path string
	Icon icons.Record
}

// FilePair is a desktop file whose path exactly matches an existing icon's
// program link. There is nothing to diff: the path is the only comparable
// attribute of a raw file.
type FilePair struct {
	File icons.DesktopFile
	Icon icons.Record
}

// FileResult partitions a desktop scan relative to a target profile. Every
// file lands in exactly one bucket.
type FileResult struct {
	FilesToImport   []icons.DesktopFile
	AlreadyImported []FilePair
	NameOnlyMatches []FileMatch
	PathOnlyMatches []FileMatch
}

// Total returns the number of classified files.
func (r FileResult) Total() int {
	return len(r.FilesToImport) + len(r.AlreadyImported) + len(r.NameOnlyMatches) + len(r.PathOnlyMatches)
}

// DesktopFiles reconciles raw desktop entries against a target profile.
// Files carry no stable id, so identity is inferred with a fixed precedence:
//
//  1. exact path match against an icon's program link -> AlreadyImported
//  2. case-insensitive name match -> NameOnlyMatches
//  3. same parent directory as an icon's program link -> PathOnlyMatches
//  4. otherwise -> FilesToImport
//
// The first matching rule wins, so a file can never appear in two buckets.
func DesktopFiles(target []icons.Record, files []icons.DesktopFile) FileResult {
	byPath := make(map[string]icons.Record, len(target))
	byName := make(map[string]icons.Record, len(target))
	for _, t := range target {
		if t.ProgramLink != "" {
			if _, seen := byPath[foldPath(t.ProgramLink)]; !seen {
				byPath[foldPath(t.ProgramLink)] = t
			}
		}
		if t.Name != "" {
			if _, seen := byName[foldPath(t.Name)]; !seen {
				byName[foldPath(t.Name)] = t
			}
		}
	}

	var res FileResult
	for _, f := range files {
		if t, ok := byPath[foldPath(f.Path)]; ok {
			res.AlreadyImported = append(res.AlreadyImported, FilePair{File: f, Icon: t})
			continue
		}
		if t, ok := byName[foldPath(f.Name)]; ok {
			res.NameOnlyMatches = append(res.NameOnlyMatches, FileMatch{Name: f.Name, Path: f.Path, Icon: t})
			continue
		}
		if t, ok := matchByDirectory(target, f); ok {
			res.PathOnlyMatches = append(res.PathOnlyMatches, FileMatch{Name: f.Name, Path: f.Path, Icon: t})
			continue
		}
		res.FilesToImport = append(res.FilesToImport, f)
	}
	return res
}

// matchByDirectory finds an icon whose program link lives in the same parent
// directory as the file but under a different name. Linear scan: profiles
// are hundreds of records at most.
func matchByDirectory(target []icons.Record, f icons.DesktopFile) (icons.Record, bool) {
	fileDir := parentDir(f.Path)
	if fileDir == "" {
		return icons.Record{}, false
	}
	for _, t := range target {
		if t.ProgramLink == "" {
			continue
		}
		if foldPath(t.Name) == foldPath(f.Name) {
			continue
		}
		if foldPath(parentDir(t.ProgramLink)) == foldPath(fileDir) {
			return t, true
		}
	}
	return icons.Record{}, false
}

// parentDir returns everything before the last path separator, handling both
// separator styles since profile documents may carry Windows paths on any
// host.
func parentDir(path string) string {
	last := -1
	for i := 0; i < len(path); i++ {
		if isSeparator(path[i]) {
			last = i
		}
	}
	if last <= 0 {
		return ""
	}
	return path[:last]
}
