package ihtcache

// MinCapacityDefault and MaxLoadFactorDefault are the defaults spec §3
// assigns when a Config leaves MinCapacity / MaxLoadFactor at its zero
// value.
const (
	MinCapacityDefault  = 16
	MaxLoadFactorDefault = 0.40
)

// Cache is a fixed-capacity, single-threaded, open-addressing key→value
// cache (spec §1-§3). It is not safe for concurrent use; callers must
// externally serialize all operations on a given instance.
type Cache struct {
	keySize, valueSize int
	minCapacity        int
	maxLoadFactor      float64

	mask uint32 // M-1
	k    uint32 // max simultaneously-live items

	slots []slot
	pool  itemPool

	itemCount  uint32
	evictIndex uint32

	fastMode bool // keySize<=16 && valueSize<=16: enables GetFast/findForReadFast

	naValue []byte

	filler         Filler
	context        any
	valueDestroyer ValueDestroyer
	cxtDestroyer   CxtDestroyer

	stats stats

	destroyed bool

	// staged holds the configuration that the next Reconfigure() call will
	// commit. SetMaxLoadFactor/SetMinCapacity/SetValueDestroyer/
	// SetCxtDestroyer/SetNAValue all mutate this copy, not the live config,
	// per spec §4.9's "stage configuration" / "commits staged config" split.
	staged Config
}

// validate checks a Config against spec §7's "robust implementations SHOULD
// assert preconditions" guidance, returning a sentinel error rather than
// leaving the caller in genuinely undefined territory.
func validate(cfg Config) error {
	if cfg.KeySize <= 0 {
		return ErrZeroKeySize
	}
	if cfg.ValueSize <= 0 {
		return ErrZeroValueSize
	}
	if cfg.MinCapacity < 0 {
		return ErrBadMinCapacity
	}
	lf := cfg.MaxLoadFactor
	if lf == 0 {
		lf = MaxLoadFactorDefault
	}
	if lf <= 0 || lf > 1 {
		return ErrBadLoadFactor
	}
	if cfg.NAValue != nil && len(cfg.NAValue) != cfg.ValueSize {
		return ErrBadNAValueSize
	}
	return nil
}

// sizing computes M (slot count) and K (item pool size) from a requested
// minimum capacity and load factor, per spec §3: M is the smallest power of
// two >= ceil(max(c, MIN_CAPACITY) / alpha); K = floor(M * alpha).
func sizing(minCapacity int, alpha float64) (m, k uint32) {
	c := minCapacity
	if c < MinCapacityDefault {
		c = MinCapacityDefault
	}
	want := int(float64(c)/alpha + 0.999999)
	m = nextPow2(want)
	k = uint32(float64(m) * alpha)
	if k == 0 {
		k = 1
	}
	return m, k
}

// New creates a cache per spec §4.9's create operation.
func New(cfg Config) (*Cache, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	c, err := build(cfg)
	if err != nil {
		return nil, err
	}
	c.staged = cfg
	return c, nil
}

func build(cfg Config) (*Cache, error) {
	alpha := cfg.MaxLoadFactor
	if alpha == 0 {
		alpha = MaxLoadFactorDefault
	}
	minCap := cfg.MinCapacity
	if minCap == 0 {
		minCap = MinCapacityDefault
	}

	m, k := sizing(minCap, alpha)

	c := &Cache{
		keySize:       cfg.KeySize,
		valueSize:     cfg.ValueSize,
		minCapacity:   minCap,
		maxLoadFactor: alpha,
		mask:          m - 1,
		k:             k,
		slots:         make([]slot, m),
		pool:          newItemPool(int(k), cfg.KeySize, cfg.ValueSize),
		fastMode:      cfg.KeySize <= 16 && cfg.ValueSize <= 16,
		filler:        cfg.Filler,
		context:       cfg.Context,
		valueDestroyer: cfg.ValueDestroyer,
		cxtDestroyer:   cfg.CxtDestroyer,
	}
	if cfg.NAValue != nil {
		c.naValue = append([]byte(nil), cfg.NAValue...)
	} else {
		c.naValue = make([]byte, cfg.ValueSize) // O5: zero-filled default
	}
	return c, nil
}

// Reconfigure commits the staged configuration (set via SetMaxLoadFactor,
// SetMinCapacity, SetValueDestroyer, SetCxtDestroyer, SetNAValue, or by
// mutating the Config returned from Staged()), destructively: all live
// values are destroyed (via the *currently active* ValueDestroyer) before
// the arrays are rebuilt under the staged configuration (spec §4.9's
// reconfigure). On validation failure, the cache is left completely
// untouched, per spec §7.
func (c *Cache) Reconfigure() error {
	cfg := c.staged
	cfg.KeySize = c.keySize
	cfg.ValueSize = c.valueSize
	if err := validate(cfg); err != nil {
		dropError("reconfigure rejected", err)
		return err
	}
	c.destroyLiveValues()
	next, err := build(cfg)
	if err != nil {
		return err
	}
	next.staged = cfg
	*c = *next
	return nil
}

// Staged returns a pointer to the configuration that the next Reconfigure
// will commit, for callers that want to adjust fields Set* has no dedicated
// method for (e.g. Filler, Context).
func (c *Cache) Staged() *Config { return &c.staged }

// RemoveAll destroys all live values and clears the table; item_count
// returns to 0 (spec §4.9's remove_all). Idempotent (P9).
func (c *Cache) RemoveAll() {
	c.destroyLiveValues()
	for i := range c.slots {
		c.slots[i] = slot{}
	}
	c.itemCount = 0
	c.evictIndex = 0
}

// Destroy runs RemoveAll, then invokes the configured CxtDestroyer, and
// marks the cache unusable. Calling any other method after Destroy is
// undefined, per spec §1's non-goals.
func (c *Cache) Destroy() {
	if c.destroyed {
		return
	}
	c.RemoveAll()
	if c.cxtDestroyer != nil {
		c.cxtDestroyer(c.context)
	}
	c.destroyed = true
}

// --- accessors (spec §6) ---

func (c *Cache) HasFiller() bool          { return c.filler != nil }
func (c *Cache) ItemCount() int           { return int(c.itemCount) }
func (c *Cache) MaxItems() int            { return int(c.k) }
func (c *Cache) KeySize() int             { return c.keySize }
func (c *Cache) ValueSize() int           { return c.valueSize }
func (c *Cache) MaxLoadFactor() float64   { return c.maxLoadFactor }

// --- staged configuration setters (spec §4.9); require Reconfigure to commit ---

func (c *Cache) SetMaxLoadFactor(alpha float64)     { c.staged.MaxLoadFactor = alpha }
func (c *Cache) SetMinCapacity(n int)               { c.staged.MinCapacity = n }
func (c *Cache) SetValueDestroyer(d ValueDestroyer) { c.staged.ValueDestroyer = d }
func (c *Cache) SetCxtDestroyer(d CxtDestroyer)     { c.staged.CxtDestroyer = d }

func (c *Cache) SetNAValue(v []byte) error {
	if len(v) != c.valueSize {
		return ErrBadNAValueSize
	}
	c.staged.NAValue = append([]byte(nil), v...)
	return nil
}
