package vlc

import (
	"sync"
	"testing"
)

func TestLoadVLCConcurrentWithFirstLoad(t *testing.T) {
	old := vlcLoaded.Load()
	t.Cleanup(func() { vlcLoaded.Store(old) })
	vlcLoaded.Store(false)
	// Spend the load gate so loadVLC never reaches a real dlopen here.
	vlcOnce.Do(func() {})

	// Callers racing with the first successful load must either take the
	// loaded fast path or fall through to the spent gate; both return nil.
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		vlcLoaded.Store(true)
	}()
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if err := loadVLC(); err != nil {
				t.Errorf("loadVLC() error = %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if !vlcLoaded.Load() {
		t.Error("loaded flag not observed after store")
	}
}
