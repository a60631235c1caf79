// Package collide is the driver around the search engines: it digests a key,
// runs the configured engine to find a different string with the same digest,
// logs the run with zap and optionally hands the Report to a Recorder.
//
// Usage
//
//	cfg := collide.DefaultConfig()
//	cfg.Strategy = collide.BreadthFirst
//	cfg.Mode = search.Exhaustive
//
//	f, err := collide.NewFinder(cfg, logger, collide.WithRecorder(store))
//	if err != nil {
//		return err
//	}
//	rep, err := f.Find(ctx, collide.DefaultKey)
//	switch {
//	case errors.Is(err, search.ErrSearchExhausted):
//		// not found within budget
//	case err != nil:
//		return err
//	default:
//		fmt.Println(rep.Result.Candidate)
//	}
//
// The key itself is never reported as its own collision unless
// Config.AllowKey is set.
package collide
