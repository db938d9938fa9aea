// Package watcher reports changes to a lyric file so the player can
// reload it while it is being edited.
//
//	w, _ := watcher.New("song.lrc", watcher.WithOnError(func(err error) {
//	    log.Println(err)
//	}))
//	_ = w.Start()
//	defer w.Stop()
//	<-w.Changed()
//
// Write, create and rename events are debounced; removals are reported
// as ErrFileRemoved through the error callback.
package watcher
