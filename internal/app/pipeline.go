package app

import (
	"log"
	"time"

	"github.com/anupamd/mudra/internal/detector"
	"github.com/anupamd/mudra/internal/store"
)

// runPipeline is the main detection loop.
//
// Pipeline logic:
//  1. Start in idle mode (IdleFPS)
//  2. On motion, switch to active mode (ActiveFPS)
//  3. Run hand detection on active frames
//  4. Classify the first detected hand and offer it to the dispatcher
//  5. After 2s without motion, drop back to idle mode
func (a *App) runPipeline(stopCh <-chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					ticker.Reset(time.Second / time.Duration(ActiveFPS))
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(IdleFPS)
					ticker.Reset(time.Second / time.Duration(IdleFPS))
					a.classifier.ResetTracking()
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode {
				frame.Close()
				continue
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.processHands(hands, time.Now())
		}
	}
}

// processHands runs one frame's detections through classification and
// dispatch. Only the first reported hand is considered; a frame with no
// usable hand, including a partial snapshot with missing landmarks,
// clears direction tracking so a reappearing hand starts fresh.
func (a *App) processHands(hands []detector.HandLandmarks, now time.Time) {
	if len(hands) == 0 || !hands[0].Valid() {
		a.classifier.ResetTracking()
		return
	}

	hand := &hands[0]
	result := a.classifier.ClassifyWithDirection(hand)

	emitted, err := a.dispatcher.Offer(result.Combined, now)
	if err != nil {
		log.Printf("Error dispatching %q: %v", result.Combined, err)
		return
	}
	if !emitted {
		return
	}

	log.Printf("Emitted %q -> %q", result.Combined, a.dispatcher.Command(result.Combined))

	if a.config.Store != nil {
		event := &store.Event{
			Gesture:    string(result.Label),
			Direction:  string(result.Direction),
			Combined:   result.Combined,
			Command:    a.dispatcher.Command(result.Combined),
			Handedness: hand.Handedness,
			Score:      hand.Score,
			CreatedAt:  now,
		}
		if err := a.config.Store.Events().Create(event); err != nil {
			log.Printf("Error recording event: %v", err)
		}
	}
}
