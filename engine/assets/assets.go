package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/oglc/engine/assets/loaders"
	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// AssetManager serves files from an on-disk directory or, without one, from
// an embedded file system. With watching enabled, changes under the
// directory are collected for PollChanges.
type AssetManager struct {
	fsys    fs.FS
	dir     string
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	wg       sync.WaitGroup
	fsnotify *fsnotify.Watcher
	isClosed bool
	changed  []string
	pending  map[string]bool
}

func NewAssetManager(cfg core.AssetsConfig, embedded fs.FS) (*AssetManager, error) {
	am := &AssetManager{
		fsys:    embedded,
		dir:     cfg.Dir,
		assets:  make(map[string]AssetInfo),
		loaders: make(map[metadata.ResourceType]Loader),
		pending: make(map[string]bool),
		done:    make(chan struct{}),
	}
	if cfg.Watch && cfg.Dir == "" {
		return nil, fmt.Errorf("%w: watching needs an asset directory", core.ErrInvalidConfig)
	}
	if cfg.Dir != "" {
		am.fsys = os.DirFS(cfg.Dir)
	}
	if am.fsys == nil {
		return nil, errors.New("asset manager needs a directory or an embedded file system")
	}

	am.RegisterLoader(metadata.ResourceTypeShader, &loaders.ShaderLoader{})
	am.RegisterLoader(metadata.ResourceTypeText, &loaders.ShaderLoader{})
	am.RegisterLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})
	am.RegisterLoader(metadata.ResourceTypeTexture, &loaders.TextureLoader{})

	if err := am.index(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		fsWatch, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, err
		}
		am.fsnotify = fsWatch
		if err := am.watchRecursive(cfg.Dir); err != nil {
			fsWatch.Close()
			return nil, err
		}
		am.wg.Add(1)
		go am.start()
		core.LogInfo("watching %s for asset changes", cfg.Dir)
	}
	return am, nil
}

// FS is the file system assets are read from.
func (am *AssetManager) FS() fs.FS {
	return am.fsys
}

// RegisterLoader sets the loader for a resource type, replacing any
// previous one.
func (am *AssetManager) RegisterLoader(assetType metadata.ResourceType, loader Loader) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.loaders[assetType] = loader
}

// ReadFile returns the raw bytes of name.
func (am *AssetManager) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(am.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", core.ErrAssetNotFound, name)
	}
	return data, err
}

// LoadAsset loads name with the loader registered for resourceType.
func (am *AssetManager) LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	am.mutex.RLock()
	loader, ok := am.loaders[resourceType]
	am.mutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrNoLoader, resourceType)
	}

	res, err := loader.Load(am.fsys, name, params)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", core.ErrAssetNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	am.assets[name] = AssetInfo{
		Path:       name,
		Type:       resourceType,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()
	core.LogDebug("loaded %s asset %s", resourceType, name)
	return res, nil
}

func (am *AssetManager) UnloadAsset(resourceType metadata.ResourceType, res *metadata.Resource) error {
	am.mutex.RLock()
	loader, ok := am.loaders[resourceType]
	am.mutex.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNoLoader, resourceType)
	}
	return loader.Unload(res)
}

// Assets lists every known file with its detected type.
func (am *AssetManager) Assets() []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	out := make([]AssetInfo, 0, len(am.assets))
	for _, a := range am.assets {
		out = append(out, a)
	}
	return out
}

// PollChanges returns the paths that changed since the last call, oldest
// first, each at most once.
func (am *AssetManager) PollChanges() []string {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	out := am.changed
	am.changed = nil
	clear(am.pending)
	return out
}

// Close stops the watcher, if any.
func (am *AssetManager) Close() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	am.mutex.Unlock()

	if am.fsnotify != nil {
		close(am.done)
		am.wg.Wait()
	}
	return nil
}

func (am *AssetManager) index() error {
	return fs.WalkDir(am.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			am.handleFileEvent(p, false)
		}
		return nil
	})
}

// addDirectory watches a directory created after startup. Files written
// into it before the watch was in place are queued here since no event
// will arrive for them.
func (am *AssetManager) addDirectory(dir string) {
	if err := am.watchRecursive(dir); err != nil {
		core.LogWarn("asset watcher: %s", err)
	}
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(am.dir, p)
		if err != nil {
			return nil
		}
		am.handleFileEvent(filepath.ToSlash(rel), true)
		return nil
	})
	if err != nil {
		core.LogWarn("asset watcher: scan %s: %s", dir, err)
	}
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					am.addDirectory(e.Name)
				}
				continue
			}
			rel, err := filepath.Rel(am.dir, e.Name)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(rel, true)
			}
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(rel)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds root and every directory below it to the watch list.
func (am *AssetManager) watchRecursive(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return am.fsnotify.Add(p)
		}
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(p string, changed bool) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	assetType := determineAssetType(p)
	if assetType == metadata.ResourceTypeNone {
		return
	}
	info := am.assets[p]
	info.Path = p
	info.Type = assetType
	am.assets[p] = info

	if changed && !am.pending[p] {
		am.pending[p] = true
		am.changed = append(am.changed, p)
	}
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(p string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, p)
}

func determineAssetType(p string) metadata.ResourceType {
	switch path.Ext(p) {
	case ".vert", ".frag", ".geom", ".glsl":
		return metadata.ResourceTypeShader
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return metadata.ResourceTypeImage
	case ".txt", ".toml":
		return metadata.ResourceTypeText
	default:
		return metadata.ResourceTypeNone
	}
}
