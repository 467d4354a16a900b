package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/denisbrodbeck/machineid"
	"github.com/rs/zerolog/log"
	"github.com/vinser/gridsnake/internal/sound"
)

// State holds persistent player preferences.
type State struct {
	SpriteSize   string         `json:"sprite_size"` // Sprite size: small, medium, large
	Mute         bool           `json:"mute"`        // Mute all sounds
	SoundManager *sound.Manager `json:"-"`
}

const (
	// Sprite sizes
	SpriteSmall   = "small"
	SpriteMedium  = "medium"
	SpriteLarge   = "large"
	SpriteDefault = SpriteMedium
)

var encryptionKey = generateKey()

// savePath is replaced in tests.
var savePath = getSavePath

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID("gridsnake")
	if err != nil {
		appID = "default-gridsnake-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

// ValidSpriteSize reports whether size is a known sprite size.
func ValidSpriteSize(size string) bool {
	switch size {
	case SpriteSmall, SpriteMedium, SpriteLarge:
		return true
	}
	return false
}

// SetMute toggles the mute state and applies it to the sound manager.
func (s *State) SetMute(mute bool) {
	s.Mute = mute
	if s.SoundManager == nil {
		return
	}
	if s.Mute {
		s.SoundManager.Mute()
	} else {
		s.SoundManager.Unmute()
	}
}

// Save persists the current state to an encrypted file with an integrity check.
func (s *State) Save() error {
	path, err := savePath()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return fmt.Errorf("state: %w", err)
	}
	return os.WriteFile(path, encrypted, 0644)
}

// New returns default preferences without sound.
func New() *State {
	return &State{
		SpriteSize: SpriteDefault,
	}
}

// Load reads the state from disk, decrypts and verifies it.
// Any failure yields the defaults.
func Load() *State {
	s, err := load()
	if err != nil {
		return New()
	}
	return s
}

func load() (*State, error) {
	path, err := savePath()
	if err != nil {
		return nil, err
	}
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decrypted, err := decrypt(encrypted)
	if err != nil {
		return nil, err
	}
	if len(decrypted) < 5 {
		return nil, errors.New("state: payload too short")
	}
	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return nil, errors.New("state: checksum mismatch")
	}
	s := &State{}
	if err := json.Unmarshal(payload, s); err != nil {
		return nil, err
	}
	if !ValidSpriteSize(s.SpriteSize) {
		s.SpriteSize = SpriteDefault
	}
	return s, nil
}

// sampleVolumes keeps the frequent chirps below the jingles, in dB.
var sampleVolumes = map[string]float64{
	sound.EAT:       -4,
	sound.EAT_LARGE: -2,
}

// AttachSound creates the sound manager with the given master volume in dB.
// If that fails the game is forced into mute mode, but the saved preference
// is kept for the next session.
func (s *State) AttachSound(masterDB float64) error {
	mgr, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		s.SoundManager = nil
		return err
	}
	if err := mgr.LoadSamples(); err != nil {
		mgr.Close()
		return err
	}
	mgr.SetMasterVolume(masterDB)
	for name, db := range sampleVolumes {
		mgr.SetVolume(name, db)
	}
	s.SoundManager = mgr
	if s.Mute {
		mgr.Mute()
	}
	return nil
}

// PlaySound starts the named effect. Playback problems never stop the game,
// they are only logged.
func (s *State) PlaySound(name string) {
	if s.SoundManager == nil {
		return
	}
	if err := s.SoundManager.Play(name); err != nil {
		log.Debug().Err(err).Str("sound", name).Msg("play sound")
	}
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// getSavePath returns the path to the save file inside the user config directory.
func getSavePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	saveDir := filepath.Join(configDir, "gridsnake")
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, "state.dat"), nil
}
